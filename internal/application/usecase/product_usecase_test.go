package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

var productScope = authz.Scope{Role: entity.RolePalenque, PalenqueID: 1}

func precio(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Un producto entra con todas sus presentaciones en una sola transacción.
func TestProductCreate_ConPresentaciones(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo})

	out, err := uc.Create(context.Background(), productScope, dto.CreateProductRequest{
		Nombre:    "Mezcal Espadín Joven",
		Categoria: "espadin",
		Presentaciones: []dto.PresentacionRequest{
			{VolumenML: 750, Precio: precio("450.00"), Stock: 12},
			{VolumenML: 375, Precio: precio("250.00"), Stock: 30},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.PalenqueID)
	require.Len(t, out.Presentaciones, 2)
	assert.True(t, out.Activo)
	assert.Len(t, repo.presentaciones, 2)
}

// Sin presentaciones no hay producto.
func TestProductCreate_SinPresentaciones_Invalido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo})

	_, err := uc.Create(context.Background(), productScope, dto.CreateProductRequest{
		Nombre: "Mezcal sin variantes",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.products)
}

// Presentación inválida (precio cero): se rechaza todo el lote.
func TestProductCreate_PrecioCero_Invalido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo})

	_, err := uc.Create(context.Background(), productScope, dto.CreateProductRequest{
		Nombre: "Mezcal Tobalá",
		Presentaciones: []dto.PresentacionRequest{
			{VolumenML: 750, Precio: decimal.Zero, Stock: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si una presentación falla al insertarse, el producto tampoco queda
// (rollback de la transacción).
func TestProductCreate_FalloEnPresentacion_Rollback(t *testing.T) {
	repo := newFakeProductRepo()
	repo.failCreatePres = true
	uc := usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo})

	_, err := uc.Create(context.Background(), productScope, dto.CreateProductRequest{
		Nombre: "Mezcal Cuishe",
		Presentaciones: []dto.PresentacionRequest{
			{VolumenML: 750, Precio: precio("600.00"), Stock: 3},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repo.products, "el producto no debe quedar sin presentaciones")
	assert.Empty(t, repo.presentaciones)
}

// Producto de otro tenant: invisible para el scope.
func TestProductGet_OtroTenant_NotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo})

	created, err := uc.Create(context.Background(), productScope, dto.CreateProductRequest{
		Nombre: "Mezcal Arroqueño",
		Presentaciones: []dto.PresentacionRequest{
			{VolumenML: 750, Precio: precio("800.00"), Stock: 2},
		},
	})
	require.NoError(t, err)

	otherTenant := authz.Scope{Role: entity.RolePalenque, PalenqueID: 2}
	_, err = uc.Get(context.Background(), otherTenant, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
