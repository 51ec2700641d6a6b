package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos de un palenque.
// La creación es transaccional: producto y presentaciones entran juntos o no
// entra nada, así un producto nunca queda sin presentaciones.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	tx          TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, tx: tx}
}

// Create valida y persiste un producto con sus presentaciones.
func (uc *ProductUseCase) Create(ctx context.Context, scope authz.Scope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" || len(in.Presentaciones) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, pr := range in.Presentaciones {
		if pr.VolumenML <= 0 || pr.Stock < 0 || pr.Precio.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	product := &entity.Product{
		PalenqueID:  scope.PalenqueID,
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
		ImagenURL:   in.ImagenURL,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.RunProducts(ctx, func(products repository.ProductRepository) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		for _, pr := range in.Presentaciones {
			pres := &entity.Presentacion{
				ProductID: product.ID,
				VolumenML: pr.VolumenML,
				Precio:    pr.Precio,
				Stock:     pr.Stock,
			}
			if err := products.CreatePresentacion(ctx, pres); err != nil {
				return err
			}
			product.Presentaciones = append(product.Presentaciones, *pres)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve los productos del scope con sus presentaciones.
func (uc *ProductUseCase) List(ctx context.Context, scope authz.Scope, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByPalenque(ctx, scope.PalenqueID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Get devuelve un producto del scope.
func (uc *ProductUseCase) Get(ctx context.Context, scope authz.Scope, id int64) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, scope.PalenqueID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update actualiza la cabecera del producto verificando pertenencia.
func (uc *ProductUseCase) Update(ctx context.Context, scope authz.Scope, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Product{
		ID:          id,
		PalenqueID:  scope.PalenqueID,
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
		ImagenURL:   in.ImagenURL,
		UpdatedAt:   time.Now(),
	}
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.Get(ctx, scope, id)
}

// SetActivo activa o desactiva un producto del scope.
func (uc *ProductUseCase) SetActivo(ctx context.Context, scope authz.Scope, id int64, activo bool) error {
	return uc.productRepo.SetActivo(ctx, scope.PalenqueID, id, activo)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		PalenqueID:  p.PalenqueID,
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Descripcion: p.Descripcion,
		ImagenURL:   p.ImagenURL,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	resp.Presentaciones = make([]dto.PresentacionResponse, 0, len(p.Presentaciones))
	for _, pr := range p.Presentaciones {
		resp.Presentaciones = append(resp.Presentaciones, dto.PresentacionResponse{
			ID:        pr.ID,
			VolumenML: pr.VolumenML,
			Precio:    pr.Precio,
			Stock:     pr.Stock,
		})
	}
	return resp
}
