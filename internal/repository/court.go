package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const courtColumns = `id, nombre, tipo, descripcion, capacidad_maxima, dias_operacion,
	hora_apertura, hora_cierre, orden, activa, created_at, updated_at`

const configColumns = `id, cancha_id, precio_hora_1, precio_hora_2, precio_hora_3,
	tiene_happy_hour, happy_hour_inicio, happy_hour_fin, precio_hora_2_happy_hour,
	precio_persona_1_circuito, precio_persona_2_circuitos, activa, created_at`

type CourtRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourtRepo(db *dbpg.DB) *CourtRepository {
	return &CourtRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CourtRepository) Create(ctx context.Context, c *domain.Court) error {
	query := `INSERT INTO canchas (` + courtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Nombre, c.Tipo, c.Descripcion, c.CapacidadMaxima, pq.Array(c.DiasOperacion),
		c.HoraApertura, c.HoraCierre, c.Orden, c.Activa, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert court: %w", err)
	}

	return nil
}

// GetByID returns the court with its active price configuration embedded,
// when one exists.
func (r *CourtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM canchas WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get court: %w", err)
	}

	court, err := scanCourt(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, fmt.Errorf("scan court: %w", err)
	}

	if err = r.attachActiveConfigs(ctx, []*domain.Court{court}); err != nil {
		return nil, err
	}

	return court, nil
}

func (r *CourtRepository) List(ctx context.Context, f domain.CourtFilter) ([]*domain.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM canchas`
	var conds []string
	var args []any
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		conds = append(conds, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if f.Activa != nil {
		args = append(args, *f.Activa)
		conds = append(conds, fmt.Sprintf("activa = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY orden ASC, nombre ASC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courts: %w", err)
	}
	defer rows.Close()

	var courts []*domain.Court
	for rows.Next() {
		court, err := scanCourt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		courts = append(courts, court)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachActiveConfigs(ctx, courts); err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *CourtRepository) Update(ctx context.Context, c *domain.Court) error {
	query := `UPDATE canchas SET
			nombre = $2, descripcion = $3, capacidad_maxima = $4, dias_operacion = $5,
			hora_apertura = $6, hora_cierre = $7, orden = $8, activa = $9, updated_at = $10
		WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Nombre, c.Descripcion, c.CapacidadMaxima, pq.Array(c.DiasOperacion),
		c.HoraApertura, c.HoraCierre, c.Orden, c.Activa, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("court rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCourtNotFound
	}

	return nil
}

func (r *CourtRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE canchas SET activa = FALSE, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("court rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCourtNotFound
	}

	return nil
}

// SetActiveConfig swaps the active tariff sheet in one transaction so there
// is never a window with zero or two active configurations.
func (r *CourtRepository) SetActiveConfig(ctx context.Context, cfg *domain.PriceConfig) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	deactivate := `UPDATE configuraciones_precios SET activa = FALSE WHERE cancha_id = $1 AND activa`
	if _, err = tx.ExecContext(ctx, deactivate, cfg.CanchaID); err != nil {
		return fmt.Errorf("deactivate configs: %w", err)
	}

	insert := `INSERT INTO configuraciones_precios (` + configColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(ctx, insert,
		cfg.ID, cfg.CanchaID, cfg.PrecioHora1, cfg.PrecioHora2, cfg.PrecioHora3,
		cfg.TieneHappyHour, cfg.HappyHourInicio, cfg.HappyHourFin, cfg.PrecioHora2HappyHour,
		cfg.PrecioPersona1Circuito, cfg.PrecioPersona2Circuitos, cfg.Activa, cfg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert config: %w", err)
	}

	return tx.Commit()
}

func (r *CourtRepository) ListConfigs(ctx context.Context, courtID string) ([]*domain.PriceConfig, error) {
	query := `SELECT ` + configColumns + ` FROM configuraciones_precios
		WHERE cancha_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courtID)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	defer rows.Close()

	var configs []*domain.PriceConfig
	for rows.Next() {
		cfg, err := scanConfig(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *CourtRepository) attachActiveConfigs(ctx context.Context, courts []*domain.Court) error {
	if len(courts) == 0 {
		return nil
	}

	ids := make([]string, len(courts))
	byID := make(map[string]*domain.Court, len(courts))
	for i, c := range courts {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	query := `SELECT ` + configColumns + ` FROM configuraciones_precios
		WHERE activa AND cancha_id = ANY($1)`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list active configs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		cfg, err := scanConfig(rows.Scan)
		if err != nil {
			return fmt.Errorf("scan config: %w", err)
		}
		if court, ok := byID[cfg.CanchaID]; ok {
			court.Config = cfg
		}
	}

	return rows.Err()
}

func scanCourt(scan func(dest ...any) error) (*domain.Court, error) {
	var c domain.Court
	var capacidad sql.NullInt64

	err := scan(
		&c.ID, &c.Nombre, &c.Tipo, &c.Descripcion, &capacidad, pq.Array(&c.DiasOperacion),
		&c.HoraApertura, &c.HoraCierre, &c.Orden, &c.Activa, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if capacidad.Valid {
		v := int(capacidad.Int64)
		c.CapacidadMaxima = &v
	}

	return &c, nil
}

func scanConfig(scan func(dest ...any) error) (*domain.PriceConfig, error) {
	var cfg domain.PriceConfig

	err := scan(
		&cfg.ID, &cfg.CanchaID, &cfg.PrecioHora1, &cfg.PrecioHora2, &cfg.PrecioHora3,
		&cfg.TieneHappyHour, &cfg.HappyHourInicio, &cfg.HappyHourFin, &cfg.PrecioHora2HappyHour,
		&cfg.PrecioPersona1Circuito, &cfg.PrecioPersona2Circuitos, &cfg.Activa, &cfg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
