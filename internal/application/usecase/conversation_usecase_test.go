package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

var convScope = authz.Scope{Role: entity.RolePalenque, PalenqueID: 1}

// Un mensaje entrante crea la conversación en modo automático y no la saca
// de ese modo por más mensajes que lleguen.
func TestInbound_CreaConversacionAutomatica(t *testing.T) {
	repo := newFakeConvRepo()
	uc := usecase.NewConversationUseCase(repo, &fakeRelay{}, testLogger())

	conv, err := uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1,
		Telefono:   "+52 951 555 0201",
		Nombre:     "Pedro",
		Mensaje:    "Hola, ¿tienen mezcal espadín?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModoAutomatico, conv.Modo)

	// Segundo mensaje del mismo teléfono: mismo hilo, modo intacto.
	conv2, err := uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1,
		Telefono:   "+52 951 555 0201",
		Mensaje:    "¿Hacen envíos?",
	})
	require.NoError(t, err)
	assert.Equal(t, conv.ID, conv2.ID)
	assert.Equal(t, entity.ModoAutomatico, conv2.Modo)

	msgs, err := repo.ListMessages(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2, "los mensajes se acumulan, nunca se reemplazan")
}

// La respuesta humana registra el mensaje saliente y pasa el hilo a manual.
func TestReply_RegistraSalienteYPasaAManual(t *testing.T) {
	repo := newFakeConvRepo()
	relay := &fakeRelay{}
	uc := usecase.NewConversationUseCase(repo, relay, testLogger())

	conv, err := uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1, Telefono: "+52 951 555 0202", Mensaje: "Hola",
	})
	require.NoError(t, err)

	msg, err := uc.Reply(context.Background(), convScope, conv.ID, "¡Claro! ¿Qué necesitas?")
	require.NoError(t, err)
	assert.Equal(t, entity.DireccionSaliente, msg.Direccion)
	assert.Equal(t, []string{"¡Claro! ¿Qué necesitas?"}, relay.sent)

	got, err := uc.Get(context.Background(), convScope, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ModoManual, got.Modo, "una respuesta humana silencia al bot")

	// Un nuevo entrante no regresa el hilo a automático.
	_, err = uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1, Telefono: "+52 951 555 0202", Mensaje: "Gracias",
	})
	require.NoError(t, err)
	got, err = uc.Get(context.Background(), convScope, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ModoManual, got.Modo)
}

// Si el relay falla, no se registra el mensaje ni cambia el modo.
func TestReply_RelayFalla_SinEfectos(t *testing.T) {
	repo := newFakeConvRepo()
	uc := usecase.NewConversationUseCase(repo, &fakeRelay{err: assertErr}, testLogger())

	conv, err := uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1, Telefono: "+52 951 555 0203", Mensaje: "Hola",
	})
	require.NoError(t, err)

	_, err = uc.Reply(context.Background(), convScope, conv.ID, "respuesta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay de mensajería")

	got, err := uc.Get(context.Background(), convScope, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ModoAutomatico, got.Modo, "el modo no cambia si el envío falló")
	assert.Len(t, got.Mensajes, 1, "solo el entrante original; el saliente no se registró")
}

// Conversación de otro tenant: invisible.
func TestReply_OtroTenant_NotFound(t *testing.T) {
	repo := newFakeConvRepo()
	uc := usecase.NewConversationUseCase(repo, &fakeRelay{}, testLogger())

	conv, err := uc.Inbound(context.Background(), dto.InboundMessageRequest{
		PalenqueID: 1, Telefono: "+52 951 555 0204", Mensaje: "Hola",
	})
	require.NoError(t, err)

	otherTenant := authz.Scope{Role: entity.RolePalenque, PalenqueID: 2}
	_, err = uc.Reply(context.Background(), otherTenant, conv.ID, "hola")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
