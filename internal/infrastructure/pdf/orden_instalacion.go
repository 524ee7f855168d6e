// Package pdf genera la orden de instalación que el técnico lleva a la visita.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORDEN DE INSTALACIÓN      │  N° servicio + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, cédula, teléfonos, ubicación               │
//	│  SERVICIO: tecnología, plan, vendedor                        │
//	│  VISITA: fecha, franja, técnico, estado                      │
//	│  EQUIPOS: radio, router/ONU, IPs, cable                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR de ubicación + firmas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.OrdenGenerator = (*MarotoOrdenGenerator)(nil)

// MarotoOrdenGenerator implementa usecase.OrdenGenerator usando Maroto v2.
type MarotoOrdenGenerator struct {
	empresa string
	now     func() time.Time
}

// NewMarotoOrdenGenerator construye el generador. empresa aparece en el encabezado.
func NewMarotoOrdenGenerator(empresa string) *MarotoOrdenGenerator {
	return &MarotoOrdenGenerator{empresa: empresa, now: time.Now}
}

// GenerateOrden genera el PDF y devuelve sus bytes. Visita y equipos son opcionales.
func (g *MarotoOrdenGenerator) GenerateOrden(data usecase.OrdenData) ([]byte, error) {
	if data.Venta == nil {
		return nil, fmt.Errorf("pdf: la orden requiere una venta")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de instalación", true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)
	v := data.Venta

	m.AddRows(g.headerRow(v))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(section("CLIENTE"))
	m.AddRows(
		fields(
			field{"Nombre", v.Nombre},
			field{"Cédula", v.Cedula},
		),
		fields(
			field{"Teléfonos", strings.Trim(v.Telefono1+" / "+v.Telefono2, " /")},
			field{"Email", v.Email},
		),
		fields(
			field{"Municipio", v.Municipio},
			field{"Vereda", v.Vereda},
		),
	)

	m.AddRows(section("SERVICIO"))
	m.AddRows(
		fields(
			field{"Tecnología", v.Tecnologia},
			field{"Plan", v.Plan},
		),
		fields(
			field{"Fecha de venta", v.Fecha.Format("02/01/2006")},
			field{"Vendedor (cédula)", v.VendedorCedula},
		),
	)

	m.AddRows(section("VISITA"))
	if a := data.Agendamiento; a != nil {
		m.AddRows(
			fields(
				field{"Fecha", a.FechaVisita.Format("02/01/2006")},
				field{"Franja", a.FranjaVisita},
			),
			fields(
				field{"Técnico", a.TecnicoAsignado},
				field{"Estado", a.EstadoVisita},
			),
		)
	} else {
		m.AddRows(note("Sin visita agendada"))
	}

	m.AddRows(section("EQUIPOS"))
	if p := data.Aprovisionamiento; p != nil {
		rows := []core.Row{
			fields(
				field{"Router / ONU", p.TipoRouterONU},
				field{"MAC / serial", p.MacSerialRouter},
			),
		}
		if v.Tecnologia == entity.TecnologiaRadio {
			rows = append(rows, fields(
				field{"Radio", p.TipoRadio},
				field{"MAC / serial radio", p.MacSerialRadio},
			))
		}
		rows = append(rows,
			fields(
				field{"IP navegación", p.IPNavegacion},
				field{"IP gestión", p.IPGestion},
			),
			fields(
				field{"Cable", p.TipoCable},
				field{"Metros", p.MetrosCable.StringFixed(2)},
			),
		)
		m.AddRows(rows...)
	} else {
		m.AddRows(note("Equipos pendientes de aprovisionamiento"))
	}

	if v.Notas != "" {
		m.AddRows(section("NOTAS"))
		m.AddRows(note(v.Notas))
	}

	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(v.Coordenadas, data.GeneradoPor))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoOrdenGenerator) headerRow(v *entity.Venta) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ORDEN DE INSTALACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("N° servicio", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(v.NumServicio, "Por asignar"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generada: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

type field struct {
	label, value string
}

func section(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// fields pinta dos pares etiqueta/valor por fila.
func fields(left, right field) core.Row {
	cell := func(f field) []core.Col {
		return []core.Col{
			col.New(2).Add(text.New(f.label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorGray})),
			col.New(4).Add(text.New(nonEmpty(f.value, "—"), props.Text{Size: 9, Top: 1})),
		}
	}
	return row.New(6).Add(append(cell(left), cell(right)...)...)
}

func note(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

// footerRow: QR con la ubicación del cliente y espacio para firmas.
func footerRow(coordenadas, generadoPor string) core.Row {
	left := col.New(4)
	if coordenadas != "" {
		left.Add(code.NewQr(mapsURL(coordenadas), props.Rect{Percent: 95, Center: true}))
	}
	return row.New(40).Add(
		left,
		col.New(8).Add(
			text.New("Firma del cliente: ______________________________", props.Text{Size: 9, Top: 8, Left: 3}),
			text.New("Firma del técnico: ______________________________", props.Text{Size: 9, Top: 20, Left: 3}),
			text.New("Generada por: "+nonEmpty(generadoPor, "—"), props.Text{Size: 7, Top: 32, Left: 3, Color: colorGray}),
		),
	)
}

func mapsURL(coordenadas string) string {
	return "https://maps.google.com/?q=" + strings.ReplaceAll(coordenadas, " ", "")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
