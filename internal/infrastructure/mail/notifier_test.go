package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (s *fakeSender) DialAndSend(m ...*gomail.Message) error {
	s.sent = append(s.sent, m...)
	return s.err
}

func visita() (*entity.Venta, *entity.Agendamiento) {
	return &entity.Venta{Nombre: "Carlos Ruiz", Email: "carlos@correo.co", Plan: "Hogar 300"},
		&entity.Agendamiento{
			FechaVisita:     time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC),
			FranjaVisita:    entity.FranjaPM,
			TecnicoAsignado: "Pedro Pérez",
			EstadoVisita:    entity.VisitaReprogramada,
		}
}

func TestNotifyVisita_EnviaCorreo(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifier(s, "agenda@isp.co", "Conecta ISP")
	v, a := visita()

	require.NoError(t, n.NotifyVisita(context.Background(), v, a))
	require.Len(t, s.sent, 1)
	assert.Equal(t, []string{"carlos@correo.co"}, s.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Visita de instalación 22/10/2026"}, s.sent[0].GetHeader("Subject"))
}

func TestRender_TextoDeVisita(t *testing.T) {
	v, a := visita()
	body, err := NewNotifier(&fakeSender{}, "agenda@isp.co", "Conecta ISP").render(v, a)
	require.NoError(t, err)
	assert.Contains(t, body, "reprogramada")
	assert.Contains(t, body, "tarde (13:00 a 17:00)")
	assert.Contains(t, body, "Pedro Pérez")
}

func TestNotifyVisita_SinEmail(t *testing.T) {
	s := &fakeSender{}
	v, a := visita()
	v.Email = ""
	assert.Error(t, NewNotifier(s, "agenda@isp.co", "Conecta ISP").NotifyVisita(context.Background(), v, a))
	assert.Empty(t, s.sent)
}

func TestNotifyVisita_ErrorSMTP(t *testing.T) {
	s := &fakeSender{err: errors.New("connection refused")}
	v, a := visita()
	err := NewNotifier(s, "agenda@isp.co", "Conecta ISP").NotifyVisita(context.Background(), v, a)
	assert.ErrorContains(t, err, "connection refused")
}

func TestNotifyVisita_ContextoVencido(t *testing.T) {
	s := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, a := visita()
	assert.ErrorIs(t, NewNotifier(s, "agenda@isp.co", "Conecta ISP").NotifyVisita(ctx, v, a), context.Canceled)
	assert.Empty(t, s.sent)
}
