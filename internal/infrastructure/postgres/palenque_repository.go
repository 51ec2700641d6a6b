package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

var _ repository.PalenqueRepository = (*PalenqueRepo)(nil)

// PalenqueRepo implementación del puerto PalenqueRepository sobre PostgreSQL.
type PalenqueRepo struct {
	q Querier
}

// NewPalenqueRepository construye el adaptador de persistencia para palenques.
func NewPalenqueRepository(q Querier) *PalenqueRepo {
	return &PalenqueRepo{q: q}
}

const palenqueCols = `id, nombre, contacto, email, telefono, direccion, plan, activo, created_at, updated_at`

// Create persiste un nuevo palenque.
func (r *PalenqueRepo) Create(ctx context.Context, p *entity.Palenque) error {
	query := `
		INSERT INTO palenques (nombre, contacto, email, telefono, direccion, plan, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Contacto, p.Email, p.Telefono, p.Direccion, p.Plan, p.Activo,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert palenque: %w", err)
	}
	return nil
}

// GetByID obtiene un palenque por ID. Devuelve nil, nil si no existe.
func (r *PalenqueRepo) GetByID(ctx context.Context, id int64) (*entity.Palenque, error) {
	query := `SELECT ` + palenqueCols + ` FROM palenques WHERE id = $1`
	var p entity.Palenque
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Email, &p.Telefono, &p.Direccion,
		&p.Plan, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get palenque: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de un palenque.
func (r *PalenqueRepo) Update(ctx context.Context, p *entity.Palenque) error {
	query := `
		UPDATE palenques SET nombre = $2, contacto = $3, email = $4, telefono = $5, direccion = $6, plan = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Contacto, p.Email, p.Telefono, p.Direccion, p.Plan, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update palenque: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActivo activa o desactiva el palenque.
func (r *PalenqueRepo) SetActivo(ctx context.Context, id int64, activo bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE palenques SET activo = $2, updated_at = now() WHERE id = $1`,
		id, activo,
	)
	if err != nil {
		return fmt.Errorf("set palenque activo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista palenques con paginación.
func (r *PalenqueRepo) List(ctx context.Context, limit, offset int) ([]*entity.Palenque, error) {
	query := `SELECT ` + palenqueCols + ` FROM palenques ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list palenques: %w", err)
	}
	defer rows.Close()
	var list []*entity.Palenque
	for rows.Next() {
		var p entity.Palenque
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Email, &p.Telefono, &p.Direccion,
			&p.Plan, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan palenque: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
