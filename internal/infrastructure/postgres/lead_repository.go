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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
// No expone delete: los leads nunca se eliminan físicamente.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadCols = `id, palenque_id, nombre, telefono, email, origen, estado,
	experiencia_calificacion, acepto_ofertas, notas, created_at, updated_at`

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (palenque_id, nombre, telefono, email, origen, estado,
			experiencia_calificacion, acepto_ofertas, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		lead.PalenqueID, lead.Nombre, lead.Telefono, lead.Email, lead.Origen, lead.Estado,
		lead.ExperienciaCalificacion, lead.AceptoOfertas, lead.Notas, lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead verificando que pertenezca al palenque.
// Devuelve nil, nil si no existe o es de otro tenant.
func (r *LeadRepo) GetByID(ctx context.Context, palenqueID, id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadCols + ` FROM leads WHERE id = $1 AND palenque_id = $2`
	var l entity.Lead
	err := r.q.QueryRow(ctx, query, id, palenqueID).Scan(
		&l.ID, &l.PalenqueID, &l.Nombre, &l.Telefono, &l.Email, &l.Origen, &l.Estado,
		&l.ExperienciaCalificacion, &l.AceptoOfertas, &l.Notas, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// ListByPalenque lista leads del palenque con filtros opcionales y paginación.
// Los filtros se componen con placeholders posicionales, nunca concatenando
// valores del cliente en el SQL.
func (r *LeadRepo) ListByPalenque(ctx context.Context, palenqueID int64, f repository.LeadFilter, limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadCols + ` FROM leads WHERE palenque_id = $1`
	args := []any{palenqueID}
	if f.Estado != "" {
		args = append(args, f.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if f.Origen != "" {
		args = append(args, f.Origen)
		query += fmt.Sprintf(" AND origen = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.PalenqueID, &l.Nombre, &l.Telefono, &l.Email, &l.Origen, &l.Estado,
			&l.ExperienciaCalificacion, &l.AceptoOfertas, &l.Notas, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de un lead. El WHERE incluye palenque_id:
// un ID adivinado de otro tenant afecta cero filas y devuelve ErrNotFound.
func (r *LeadRepo) UpdateEstado(ctx context.Context, palenqueID, id int64, estado string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE leads SET estado = $3, updated_at = now() WHERE id = $1 AND palenque_id = $2`,
		id, palenqueID, estado,
	)
	if err != nil {
		return fmt.Errorf("update lead estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateNotas reemplaza las notas del lead, verificando tenant.
func (r *LeadRepo) UpdateNotas(ctx context.Context, palenqueID, id int64, notas string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE leads SET notas = $3, updated_at = now() WHERE id = $1 AND palenque_id = $2`,
		id, palenqueID, notas,
	)
	if err != nil {
		return fmt.Errorf("update lead notas: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
