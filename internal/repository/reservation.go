package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, cancha_id, to_char(fecha, 'YYYY-MM-DD'), hora_inicio, hora_fin,
	duracion_horas, cantidad_personas, cantidad_circuitos,
	nombre_cliente, email_cliente, telefono_cliente,
	precio_total, monto_sena, pago_completado, metodo_pago, pago_id,
	notas, estado, cancelada_at, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts the reservation inside a transaction that locks the court
// row. The lock serializes concurrent creates for the same court, so the
// conflict re-check below cannot race with another insert.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var courtID string
	lockQuery := `SELECT id FROM canchas WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, res.CanchaID).Scan(&courtID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourtNotFound
		}
		return fmt.Errorf("lock court: %w", err)
	}

	requested, err := parseWindow(res.HoraInicio, res.HoraFin)
	if err != nil {
		return fmt.Errorf("reservation window: %w", err)
	}

	occupied, err := occupiedWindows(ctx, tx, res.CanchaID, res.Fecha)
	if err != nil {
		return err
	}
	if anyOverlap(requested.start, requested.end, occupied) {
		return domain.ErrSlotUnavailable
	}

	query := `INSERT INTO reservas (
			id, cancha_id, fecha, hora_inicio, hora_fin,
			duracion_horas, cantidad_personas, cantidad_circuitos,
			nombre_cliente, email_cliente, telefono_cliente,
			precio_total, monto_sena, pago_completado, metodo_pago, pago_id,
			notas, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = tx.ExecContext(ctx, query,
		res.ID, res.CanchaID, res.Fecha, res.HoraInicio, res.HoraFin,
		res.DuracionHoras, res.CantidadPersonas, res.CantidadCircuitos,
		res.NombreCliente, res.EmailCliente, res.TelefonoCliente,
		res.PrecioTotal, res.MontoSena, res.PagoCompletado, res.MetodoPago, res.PagoID,
		res.Notas, res.Estado, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

// occupiedWindows collects the intervals of active reservations and blocks
// for the court and date, within the caller's transaction.
func occupiedWindows(ctx context.Context, tx *sql.Tx, courtID, fecha string) ([]window, error) {
	var occupied []window

	resQuery := `SELECT hora_inicio, hora_fin FROM reservas
		WHERE cancha_id = $1 AND fecha = $2 AND estado = ANY($3)`
	rows, err := tx.QueryContext(ctx, resQuery, courtID, fecha, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var inicio, fin string
		if err = rows.Scan(&inicio, &fin); err != nil {
			return nil, fmt.Errorf("scan reservation window: %w", err)
		}
		w, err := parseWindow(inicio, fin)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, w)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	blockQuery := `SELECT hora_inicio, hora_fin FROM bloqueos
		WHERE cancha_id = $1 AND fecha = $2 AND activo`
	blockRows, err := tx.QueryContext(ctx, blockQuery, courtID, fecha)
	if err != nil {
		return nil, fmt.Errorf("list active blocks: %w", err)
	}
	defer blockRows.Close()
	for blockRows.Next() {
		var inicio, fin string
		if err = blockRows.Scan(&inicio, &fin); err != nil {
			return nil, fmt.Errorf("scan block window: %w", err)
		}
		w, err := parseWindow(inicio, fin)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, w)
	}

	return occupied, blockRows.Err()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservas WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, int, error) {
	where, args := reservationFilterClause(f)

	countQuery := `SELECT COUNT(*) FROM reservas` + where
	countRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}
	var total int
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan count: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	query := `SELECT ` + reservationColumns + ` FROM reservas` + where +
		` ORDER BY fecha DESC, hora_inicio DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, offset)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, reservation)
	}

	return res, total, rows.Err()
}

func (r *ReservationRepository) ListActiveByCourtDate(ctx context.Context, courtID, fecha string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservas
		WHERE cancha_id = $1 AND fecha = $2 AND estado = ANY($3)
		ORDER BY hora_inicio`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courtID, fecha, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, reservation)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservas SET
			cancha_id = $2, fecha = $3, hora_inicio = $4, hora_fin = $5,
			duracion_horas = $6, cantidad_personas = $7, cantidad_circuitos = $8,
			nombre_cliente = $9, email_cliente = $10, telefono_cliente = $11,
			precio_total = $12, monto_sena = $13, pago_completado = $14,
			metodo_pago = $15, pago_id = $16, notas = $17, estado = $18,
			cancelada_at = $19, updated_at = $20
		WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		res.ID, res.CanchaID, res.Fecha, res.HoraInicio, res.HoraFin,
		res.DuracionHoras, res.CantidadPersonas, res.CantidadCircuitos,
		res.NombreCliente, res.EmailCliente, res.TelefonoCliente,
		res.PrecioTotal, res.MontoSena, res.PagoCompletado,
		res.MetodoPago, res.PagoID, res.Notas, res.Estado,
		res.CanceladaAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func reservationFilterClause(f domain.ReservationFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CanchaID != "" {
		add("cancha_id = $%d", f.CanchaID)
	}
	if f.Fecha != "" {
		add("fecha = $%d", f.Fecha)
	}
	if f.Estado != "" {
		add("estado = $%d", f.Estado)
	}
	if f.Email != "" {
		add("email_cliente ILIKE $%d", "%"+f.Email+"%")
	}
	if f.Telefono != "" {
		add("telefono_cliente LIKE $%d", "%"+f.Telefono+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var canceladaAt sql.NullTime
	var metodoPago, pagoID sql.NullString

	err := scan(
		&res.ID, &res.CanchaID, &res.Fecha, &res.HoraInicio, &res.HoraFin,
		&res.DuracionHoras, &res.CantidadPersonas, &res.CantidadCircuitos,
		&res.NombreCliente, &res.EmailCliente, &res.TelefonoCliente,
		&res.PrecioTotal, &res.MontoSena, &res.PagoCompletado, &metodoPago, &pagoID,
		&res.Notas, &res.Estado, &canceladaAt, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if canceladaAt.Valid {
		t := canceladaAt.Time
		res.CanceladaAt = &t
	}
	if metodoPago.Valid {
		res.MetodoPago = &metodoPago.String
	}
	if pagoID.Valid {
		res.PagoID = &pagoID.String
	}

	return &res, nil
}
