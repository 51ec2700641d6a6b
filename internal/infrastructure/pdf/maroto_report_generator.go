// Package pdf implementa la generación del reporte de leads de un palenque
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del palenque + plan  │  Título + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total leads / Leads del mes / Tasa de conversión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FUNNEL: tabla estado → total (seis estados siempre)         │
//	│  ORIGEN: tabla origen → total                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: leads recientes (fecha, nombre, teléfono, estado)    │
//	│  FOOTER: QR al formulario de captura + leyenda               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appmetrics "github.com/torressantiago/agencia-crm/internal/application/metrics"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// etiquetas legibles de los estados del funnel.
var estadoLabels = map[string]string{
	entity.LeadEstadoNuevo:      "Nuevo",
	entity.LeadEstadoContactado: "Contactado",
	entity.LeadEstadoRespondio:  "Respondió",
	entity.LeadEstadoConvertido: "Convertido",
	entity.LeadEstadoInactivo:   "Inactivo",
	entity.LeadEstadoOptOut:     "Opt-out",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa metrics.LeadReportPDFGenerator usando
// Maroto v2. captureBaseURL es la base del formulario público de captura; si
// está vacía el footer omite el QR.
type MarotoReportGenerator struct {
	captureBaseURL string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(captureBaseURL string) *MarotoReportGenerator {
	return &MarotoReportGenerator{captureBaseURL: captureBaseURL}
}

var _ appmetrics.LeadReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateLeadReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLeadReport(
	_ context.Context,
	palenque *entity.Palenque,
	metrics *dto.DashboardMetricsDTO,
	recientes []*entity.Lead,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Leads", true).
		WithAuthor(palenque.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(palenque))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("FUNNEL POR ESTADO"))
	for _, r := range funnelRows(metrics.Funnel) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("CAPTURAS POR ORIGEN"))
	for _, r := range origenRows(metrics.PorOrigen) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("LEADS RECIENTES"))
	m.AddRows(leadsHeaderRow())
	for _, r := range leadRows(recientes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.footerRows(palenque) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del palenque + plan (izq) y título + fecha (der).
func headerRow(palenque *entity.Palenque) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(palenque.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Plan: "+palenque.Plan, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE LEADS", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Últimos 30 días", props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los tres indicadores principales en una sola fila.
func summaryRow(metrics *dto.DashboardMetricsDTO) core.Row {
	indicator := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		indicator("Total de leads", fmt.Sprintf("%d", metrics.TotalLeads)),
		indicator("Leads del mes", fmt.Sprintf("%d", metrics.LeadsDelMes)),
		indicator("Tasa de conversión", fmt.Sprintf("%.1f%%", metrics.TasaConversion*100)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// funnelRows: una fila por estado, siempre los seis en orden de funnel.
func funnelRows(funnel map[string]int) []core.Row {
	result := make([]core.Row, 0, len(entity.LeadEstados))
	for _, estado := range entity.LeadEstados {
		result = append(result, row.New(5).Add(
			col.New(4).Add(text.New(
				estadoLabels[estado],
				props.Text{Size: 8, Top: 1, Left: 2},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", funnel[estado]),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2},
			)),
			col.New(6),
		))
	}
	return result
}

// origenRows: una fila por origen presente en el agregado.
func origenRows(porOrigen map[string]int) []core.Row {
	// orden estable: primero los orígenes conocidos, el resto al final.
	ordered := []string{
		entity.LeadOrigenFormulario,
		entity.LeadOrigenQR,
		entity.LeadOrigenWhatsApp,
		entity.LeadOrigenWebhook,
	}
	seen := make(map[string]bool, len(ordered))
	for _, o := range ordered {
		seen[o] = true
	}
	keys := make([]string, 0, len(porOrigen))
	for _, o := range ordered {
		if _, ok := porOrigen[o]; ok {
			keys = append(keys, o)
		}
	}
	for o := range porOrigen {
		if !seen[o] {
			keys = append(keys, o)
		}
	}

	result := make([]core.Row, 0, len(keys))
	for _, origen := range keys {
		result = append(result, row.New(5).Add(
			col.New(4).Add(text.New(
				origen,
				props.Text{Size: 8, Top: 1, Left: 2},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", porOrigen[origen]),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2},
			)),
			col.New(6),
		))
	}
	return result
}

// leadsHeaderRow: cabecera de la tabla de leads recientes.
func leadsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Teléfono", 3, align.Left),
		h("Origen", 2, align.Left),
		h("Estado", 1, align.Left),
	)
}

// leadRows: una fila por lead reciente.
func leadRows(leads []*entity.Lead) []core.Row {
	result := make([]core.Row, 0, len(leads))
	for _, l := range leads {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				l.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				l.Nombre,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.Telefono,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Origen,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				estadoLabels[l.Estado],
				props.Text{Size: 7, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRows: QR al formulario público de captura + leyenda.
func (g *MarotoReportGenerator) footerRows(palenque *entity.Palenque) []core.Row {
	rows := make([]core.Row, 0, 2)

	if g.captureBaseURL != "" {
		captureURL := fmt.Sprintf("%s?palenque_id=%d&origen=%s",
			g.captureBaseURL, palenque.ID, entity.LeadOrigenQR)
		rows = append(rows, row.New(40).Add(
			col.New(3).Add(code.NewQr(captureURL, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Escanea el código QR para abrir\nel formulario de captura de este palenque.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Torres Santiago — Agencia Digital", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20,
					Left: 3, Color: colorPrimary,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente por la plataforma de Torres Santiago. "+
				"Los totales del funnel incluyen todos los leads históricos del palenque.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}
