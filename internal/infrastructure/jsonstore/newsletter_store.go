// Package jsonstore implementa el almacén de suscriptores del newsletter
// sobre un archivo JSON plano (separado de la base relacional).
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

var _ repository.NewsletterRepository = (*NewsletterStore)(nil)

// NewsletterStore almacén read-modify-write sobre un archivo JSON.
// El mutex serializa las escrituras dentro del proceso; la escritura es
// archivo temporal + rename para no dejar el JSON a medias ante un corte.
type NewsletterStore struct {
	path string
	mu   sync.Mutex
}

// NewNewsletterStore construye el almacén. Crea el directorio si no existe.
func NewNewsletterStore(path string) (*NewsletterStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio newsletter: %w", err)
	}
	return &NewsletterStore{path: path}, nil
}

// Add agrega un suscriptor. Devuelve domain.ErrDuplicate si el email ya existe
// (comparación case-insensitive).
func (s *NewsletterStore) Add(_ context.Context, sub *entity.NewsletterSubscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range subs {
		if strings.EqualFold(existing.Email, sub.Email) {
			return domain.ErrDuplicate
		}
	}
	subs = append(subs, sub)
	return s.save(subs)
}

// List devuelve todos los suscriptores.
func (s *NewsletterStore) List(_ context.Context) ([]*entity.NewsletterSubscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *NewsletterStore) load() ([]*entity.NewsletterSubscriber, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer newsletter: %w", err)
	}
	var subs []*entity.NewsletterSubscriber
	if len(data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("parsear newsletter: %w", err)
	}
	return subs, nil
}

func (s *NewsletterStore) save(subs []*entity.NewsletterSubscriber) error {
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar newsletter: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir newsletter: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("renombrar newsletter: %w", err)
	}
	return nil
}
