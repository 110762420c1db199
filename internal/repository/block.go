package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const blockColumns = `id, cancha_id, to_char(fecha, 'YYYY-MM-DD'), hora_inicio, hora_fin,
	motivo, activo, created_at, updated_at`

type BlockRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBlockRepo(db *dbpg.DB) *BlockRepository {
	return &BlockRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create locks the court row and re-checks for a colliding active block
// before inserting, same discipline as reservation creation.
func (r *BlockRepository) Create(ctx context.Context, b *domain.Block) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var courtID string
	lockQuery := `SELECT id FROM canchas WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.CanchaID).Scan(&courtID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourtNotFound
		}
		return fmt.Errorf("lock court: %w", err)
	}

	requested, err := parseWindow(b.HoraInicio, b.HoraFin)
	if err != nil {
		return fmt.Errorf("block window: %w", err)
	}

	existing, err := activeBlockWindows(ctx, tx, b.CanchaID, b.Fecha)
	if err != nil {
		return err
	}
	if anyOverlap(requested.start, requested.end, existing) {
		return domain.ErrBlockOverlap
	}

	query := `INSERT INTO bloqueos (
			id, cancha_id, fecha, hora_inicio, hora_fin,
			motivo, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.CanchaID, b.Fecha, b.HoraInicio, b.HoraFin,
		b.Motivo, b.Activo, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert block: %w", err)
	}

	return tx.Commit()
}

func activeBlockWindows(ctx context.Context, tx *sql.Tx, courtID, fecha string) ([]window, error) {
	query := `SELECT hora_inicio, hora_fin FROM bloqueos
		WHERE cancha_id = $1 AND fecha = $2 AND activo`
	rows, err := tx.QueryContext(ctx, query, courtID, fecha)
	if err != nil {
		return nil, fmt.Errorf("list active blocks: %w", err)
	}
	defer rows.Close()

	var windows []window
	for rows.Next() {
		var inicio, fin string
		if err = rows.Scan(&inicio, &fin); err != nil {
			return nil, fmt.Errorf("scan block window: %w", err)
		}
		w, err := parseWindow(inicio, fin)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, rows.Err()
}

func (r *BlockRepository) GetByID(ctx context.Context, id string) (*domain.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM bloqueos WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get block: %w", err)
	}

	block, err := scanBlock(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, fmt.Errorf("scan block: %w", err)
	}

	return block, nil
}

func (r *BlockRepository) List(ctx context.Context, f domain.BlockFilter) ([]*domain.Block, error) {
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
	if f.Activo != nil {
		add("activo = $%d", *f.Activo)
	}

	query := `SELECT ` + blockColumns + ` FROM bloqueos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY fecha DESC, hora_inicio"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.Block
	for rows.Next() {
		block, err := scanBlock(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}

	return blocks, rows.Err()
}

func (r *BlockRepository) ListActiveByCourtDate(ctx context.Context, courtID, fecha string) ([]*domain.Block, error) {
	query := `SELECT ` + blockColumns + ` FROM bloqueos
		WHERE cancha_id = $1 AND fecha = $2 AND activo
		ORDER BY hora_inicio`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, courtID, fecha)
	if err != nil {
		return nil, fmt.Errorf("list active blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.Block
	for rows.Next() {
		block, err := scanBlock(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}

	return blocks, rows.Err()
}

func (r *BlockRepository) Update(ctx context.Context, b *domain.Block) error {
	query := `UPDATE bloqueos SET
			fecha = $2, hora_inicio = $3, hora_fin = $4,
			motivo = $5, activo = $6, updated_at = $7
		WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, b.Fecha, b.HoraInicio, b.HoraFin, b.Motivo, b.Activo, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update block: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("block rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBlockNotFound
	}

	return nil
}

func (r *BlockRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE bloqueos SET activo = FALSE, updated_at = now() WHERE id = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate block: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("block rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBlockNotFound
	}

	return nil
}

func scanBlock(scan func(dest ...any) error) (*domain.Block, error) {
	var b domain.Block

	err := scan(
		&b.ID, &b.CanchaID, &b.Fecha, &b.HoraInicio, &b.HoraFin,
		&b.Motivo, &b.Activo, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}
