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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste la cabecera del producto. Las presentaciones se insertan
// aparte (misma tx) con CreatePresentacion.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (palenque_id, nombre, categoria, descripcion, imagen_url, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.PalenqueID, p.Nombre, p.Categoria, p.Descripcion, p.ImagenURL, p.Activo,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreatePresentacion persiste una presentación del producto.
func (r *ProductRepo) CreatePresentacion(ctx context.Context, pr *entity.Presentacion) error {
	query := `
		INSERT INTO presentaciones (product_id, volumen_ml, precio, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, pr.ProductID, pr.VolumenML, pr.Precio, pr.Stock).Scan(&pr.ID)
	if err != nil {
		return fmt.Errorf("insert presentacion: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con sus presentaciones, verificando tenant.
// Devuelve nil, nil si no existe o es de otro palenque.
func (r *ProductRepo) GetByID(ctx context.Context, palenqueID, id int64) (*entity.Product, error) {
	query := `
		SELECT id, palenque_id, nombre, categoria, descripcion, imagen_url, activo, created_at, updated_at
		FROM products WHERE id = $1 AND palenque_id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id, palenqueID).Scan(
		&p.ID, &p.PalenqueID, &p.Nombre, &p.Categoria, &p.Descripcion, &p.ImagenURL,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	pres, err := r.listPresentaciones(ctx, []int64{p.ID})
	if err != nil {
		return nil, err
	}
	p.Presentaciones = pres[p.ID]
	return &p, nil
}

// ListByPalenque lista productos del palenque con sus presentaciones.
func (r *ProductRepo) ListByPalenque(ctx context.Context, palenqueID int64, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, palenque_id, nombre, categoria, descripcion, imagen_url, activo, created_at, updated_at
		FROM products WHERE palenque_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, palenqueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	var ids []int64
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.PalenqueID, &p.Nombre, &p.Categoria, &p.Descripcion,
			&p.ImagenURL, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	pres, err := r.listPresentaciones(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Presentaciones = pres[p.ID]
	}
	return list, nil
}

func (r *ProductRepo) listPresentaciones(ctx context.Context, productIDs []int64) (map[int64][]entity.Presentacion, error) {
	query := `
		SELECT id, product_id, volumen_ml, precio, stock
		FROM presentaciones WHERE product_id = ANY($1) ORDER BY volumen_ml ASC`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list presentaciones: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.Presentacion, len(productIDs))
	for rows.Next() {
		var pr entity.Presentacion
		if err := rows.Scan(&pr.ID, &pr.ProductID, &pr.VolumenML, &pr.Precio, &pr.Stock); err != nil {
			return nil, fmt.Errorf("scan presentacion: %w", err)
		}
		out[pr.ProductID] = append(out[pr.ProductID], pr)
	}
	return out, rows.Err()
}

// Update actualiza la cabecera del producto verificando tenant. Las
// presentaciones no se tocan aquí.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET nombre = $3, categoria = $4, descripcion = $5, imagen_url = $6, updated_at = $7
		WHERE id = $1 AND palenque_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.PalenqueID, p.Nombre, p.Categoria, p.Descripcion, p.ImagenURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActivo activa o desactiva un producto verificando tenant.
func (r *ProductRepo) SetActivo(ctx context.Context, palenqueID, id int64, activo bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET activo = $3, updated_at = now() WHERE id = $1 AND palenque_id = $2`,
		id, palenqueID, activo,
	)
	if err != nil {
		return fmt.Errorf("set product activo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
