package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
	"github.com/torressantiago/agencia-crm/pkg/logger"
)

var assertErr = errors.New("fallo simulado")

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// ── Fakes de repositorios ─────────────────────────────────────────────────────

// fakeLeadRepo guarda leads en memoria y registra las mutaciones.
type fakeLeadRepo struct {
	mu      sync.Mutex
	nextID  int64
	leads   map[int64]*entity.Lead
	updates []string // registro de mutaciones para asertar "sin efectos"
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{nextID: 1, leads: map[int64]*entity.Lead{}}
}

func (f *fakeLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.ID = f.nextID
	f.nextID++
	cp := *l
	f.leads[l.ID] = &cp
	return nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, palenqueID, id int64) (*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok || l.PalenqueID != palenqueID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeadRepo) ListByPalenque(_ context.Context, palenqueID int64, filter repository.LeadFilter, _, _ int) ([]*entity.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Lead
	for _, l := range f.leads {
		if l.PalenqueID != palenqueID {
			continue
		}
		if filter.Estado != "" && l.Estado != filter.Estado {
			continue
		}
		if filter.Origen != "" && l.Origen != filter.Origen {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeLeadRepo) UpdateEstado(_ context.Context, palenqueID, id int64, estado string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok || l.PalenqueID != palenqueID {
		return domain.ErrNotFound
	}
	l.Estado = estado
	f.updates = append(f.updates, "estado")
	return nil
}

func (f *fakeLeadRepo) UpdateNotas(_ context.Context, palenqueID, id int64, notas string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leads[id]
	if !ok || l.PalenqueID != palenqueID {
		return domain.ErrNotFound
	}
	l.Notas = notas
	f.updates = append(f.updates, "notas")
	return nil
}

// fakePalenqueRepo con un único palenque configurado.
type fakePalenqueRepo struct {
	palenque *entity.Palenque
}

func (f *fakePalenqueRepo) Create(_ context.Context, p *entity.Palenque) error {
	p.ID = 1
	f.palenque = p
	return nil
}

func (f *fakePalenqueRepo) GetByID(_ context.Context, id int64) (*entity.Palenque, error) {
	if f.palenque == nil || f.palenque.ID != id {
		return nil, nil
	}
	cp := *f.palenque
	return &cp, nil
}

func (f *fakePalenqueRepo) Update(_ context.Context, p *entity.Palenque) error {
	f.palenque = p
	return nil
}

func (f *fakePalenqueRepo) SetActivo(_ context.Context, _ int64, activo bool) error {
	f.palenque.Activo = activo
	return nil
}

func (f *fakePalenqueRepo) List(_ context.Context, _, _ int) ([]*entity.Palenque, error) {
	if f.palenque == nil {
		return nil, nil
	}
	return []*entity.Palenque{f.palenque}, nil
}

// fakeConvRepo conversaciones y mensajes en memoria.
type fakeConvRepo struct {
	mu       sync.Mutex
	nextID   int64
	convs    map[int64]*entity.Conversation
	messages []*entity.Message
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{nextID: 1, convs: map[int64]*entity.Conversation{}}
}

func (f *fakeConvRepo) GetOrCreate(_ context.Context, palenqueID int64, telefono, nombre string) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.convs {
		if c.PalenqueID == palenqueID && c.Telefono == telefono {
			cp := *c
			return &cp, nil
		}
	}
	c := &entity.Conversation{
		ID:         f.nextID,
		PalenqueID: palenqueID,
		Telefono:   telefono,
		Nombre:     nombre,
		Modo:       entity.ModoAutomatico,
	}
	f.nextID++
	f.convs[c.ID] = c
	cp := *c
	return &cp, nil
}

func (f *fakeConvRepo) GetByID(_ context.Context, palenqueID, id int64) (*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok || c.PalenqueID != palenqueID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeConvRepo) ListByPalenque(_ context.Context, palenqueID int64, _, _ int) ([]*entity.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range f.convs {
		if c.PalenqueID == palenqueID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeConvRepo) AppendMessage(_ context.Context, msg *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg.ID = int64(len(f.messages) + 1)
	cp := *msg
	f.messages = append(f.messages, &cp)
	if c, ok := f.convs[msg.ConversationID]; ok {
		c.LastMessageAt = msg.CreatedAt
	}
	return nil
}

func (f *fakeConvRepo) ListMessages(_ context.Context, conversationID int64) ([]*entity.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeConvRepo) SetModo(_ context.Context, palenqueID, id int64, modo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.convs[id]
	if !ok || c.PalenqueID != palenqueID {
		return domain.ErrNotFound
	}
	c.Modo = modo
	return nil
}

// fakeProductRepo productos y presentaciones en memoria.
type fakeProductRepo struct {
	mu             sync.Mutex
	nextID         int64
	products       map[int64]*entity.Product
	presentaciones []*entity.Presentacion
	failCreatePres bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) CreatePresentacion(_ context.Context, pr *entity.Presentacion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreatePres {
		return assertErr
	}
	pr.ID = int64(len(f.presentaciones) + 1)
	cp := *pr
	f.presentaciones = append(f.presentaciones, &cp)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, palenqueID, id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.PalenqueID != palenqueID {
		return nil, nil
	}
	cp := *p
	for _, pr := range f.presentaciones {
		if pr.ProductID == p.ID {
			cp.Presentaciones = append(cp.Presentaciones, *pr)
		}
	}
	return &cp, nil
}

func (f *fakeProductRepo) ListByPalenque(_ context.Context, palenqueID int64, _, _ int) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.products {
		if p.PalenqueID == palenqueID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SetActivo(_ context.Context, palenqueID, id int64, activo bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.PalenqueID != palenqueID {
		return domain.ErrNotFound
	}
	p.Activo = activo
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre el repo; si fn falla, revierte
// el estado previo para emular el rollback.
type fakeTxRunner struct {
	repo *fakeProductRepo
}

func (f *fakeTxRunner) RunProducts(_ context.Context, fn func(products repository.ProductRepository) error) error {
	f.repo.mu.Lock()
	before := make(map[int64]*entity.Product, len(f.repo.products))
	for k, v := range f.repo.products {
		cp := *v
		before[k] = &cp
	}
	beforePres := append([]*entity.Presentacion(nil), f.repo.presentaciones...)
	f.repo.mu.Unlock()

	if err := fn(f.repo); err != nil {
		f.repo.mu.Lock()
		f.repo.products = before
		f.repo.presentaciones = beforePres
		f.repo.mu.Unlock()
		return err
	}
	return nil
}

// ── Fakes de colaboradores externos ──────────────────────────────────────────

type fakeForwarder struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (f *fakeForwarder) ForwardCapture(_ context.Context, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []string // destinatarios
	err  error
}

func (f *fakeEmail) Send(_ context.Context, to, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeRelay struct {
	mu   sync.Mutex
	sent []string // mensajes entregados
	err  error
}

func (f *fakeRelay) SendText(_ context.Context, _, mensaje string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mensaje)
	return nil
}
