package jsonstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/infrastructure/jsonstore"
)

func newStore(t *testing.T) *jsonstore.NewsletterStore {
	t.Helper()
	store, err := jsonstore.NewNewsletterStore(filepath.Join(t.TempDir(), "newsletter.json"))
	require.NoError(t, err)
	return store
}

func sub(id, email string) *entity.NewsletterSubscriber {
	return &entity.NewsletterSubscriber{
		ID:     id,
		Email:  email,
		AltaEn: time.Now(),
	}
}

func TestAdd_PersisteYLee(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, sub("a", "maria@example.com")))
	require.NoError(t, store.Add(ctx, sub("b", "juan@example.com")))

	subs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "maria@example.com", subs[0].Email)
}

// El email es único, sin importar mayúsculas.
func TestAdd_DuplicadoCaseInsensitive(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, sub("a", "maria@example.com")))
	err := store.Add(ctx, sub("b", "MARIA@Example.COM"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	subs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1, "el duplicado no debe escribirse")
}

// Archivo inexistente se trata como lista vacía.
func TestList_ArchivoInexistente(t *testing.T) {
	store := newStore(t)

	subs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs)
}

// El archivo sobrevive a reaperturas del store.
func TestAdd_SobreviveReapertura(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsletter.json")
	ctx := context.Background()

	store, err := jsonstore.NewNewsletterStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, sub("a", "maria@example.com")))

	reopened, err := jsonstore.NewNewsletterStore(path)
	require.NoError(t, err)
	subs, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
