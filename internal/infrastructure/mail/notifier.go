// Package mail envía por SMTP el aviso de visita de instalación al cliente.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/pkg/config"
)

var _ usecase.VisitNotifier = (*SMTPNotifier)(nil)

var visitaTmpl = template.Must(template.New("visita").Parse(`<p>Hola {{.Nombre}},</p>
<p>Tu visita de instalación del plan <b>{{.Plan}}</b> quedó {{.Estado}} para el
<b>{{.Fecha}}</b> en la franja <b>{{.Franja}}</b>.</p>
{{if .Tecnico}}<p>Técnico asignado: {{.Tecnico}}</p>{{end}}
<p>Si no puedes recibirnos, responde este correo para reprogramar.</p>
<p>{{.Empresa}}</p>`))

var franjas = map[string]string{
	entity.FranjaAM: "mañana (8:00 a 12:00)",
	entity.FranjaPM: "tarde (13:00 a 17:00)",
}

// Sender abstrae el envío para poder probar sin servidor SMTP.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier implementa usecase.VisitNotifier con gomail.
type SMTPNotifier struct {
	sender  Sender
	from    string
	empresa string
}

// NewSMTPNotifier construye el notificador a partir de la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig, empresa string) *SMTPNotifier {
	return NewNotifier(gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password), cfg.From, empresa)
}

// NewNotifier permite inyectar el Sender.
func NewNotifier(sender Sender, from, empresa string) *SMTPNotifier {
	return &SMTPNotifier{sender: sender, from: from, empresa: empresa}
}

// NotifyVisita envía el correo. gomail no acepta contexto; si ctx ya venció no se intenta el envío.
func (n *SMTPNotifier) NotifyVisita(ctx context.Context, venta *entity.Venta, visita *entity.Agendamiento) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if venta == nil || visita == nil || venta.Email == "" {
		return fmt.Errorf("mail: venta sin email")
	}
	body, err := n.render(venta, visita)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", venta.Email)
	m.SetHeader("Subject", "Visita de instalación "+visita.FechaVisita.Format("02/01/2006"))
	m.SetBody("text/html", body)

	done := make(chan error, 1)
	go func() { done <- n.sender.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: enviar a %s: %w", venta.Email, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *SMTPNotifier) render(venta *entity.Venta, visita *entity.Agendamiento) (string, error) {
	franja, ok := franjas[visita.FranjaVisita]
	if !ok {
		franja = visita.FranjaVisita
	}
	var buf bytes.Buffer
	err := visitaTmpl.Execute(&buf, map[string]string{
		"Nombre":  venta.Nombre,
		"Plan":    venta.Plan,
		"Estado":  estadoTexto(visita.EstadoVisita),
		"Fecha":   visita.FechaVisita.Format("02/01/2006"),
		"Franja":  franja,
		"Tecnico": visita.TecnicoAsignado,
		"Empresa": n.empresa,
	})
	if err != nil {
		return "", fmt.Errorf("mail: plantilla: %w", err)
	}
	return buf.String(), nil
}

func estadoTexto(estado string) string {
	switch estado {
	case entity.VisitaReprogramada:
		return "reprogramada"
	case entity.VisitaProgramada:
		return "confirmada"
	default:
		return "agendada"
	}
}
