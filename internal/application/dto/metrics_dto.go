package dto

// SerieDiariaDTO punto de la serie de 30 días del dashboard.
type SerieDiariaDTO struct {
	Fecha       string `json:"fecha"` // YYYY-MM-DD
	Capturados  int    `json:"capturados"`
	Convertidos int    `json:"convertidos"`
}

// DashboardMetricsDTO respuesta de GET /api/dashboard/metricas.
//
// Funnel siempre trae las seis llaves del enum de estados, con 0 cuando el
// agregado no devolvió filas. TasaConversion es 0 cuando no hay leads (nunca
// NaN ni división por cero).
type DashboardMetricsDTO struct {
	PalenqueID     int64            `json:"palenque_id"`
	TotalLeads     int              `json:"total_leads"`
	LeadsDelMes    int              `json:"leads_del_mes"`
	Funnel         map[string]int   `json:"funnel"`
	PorOrigen      map[string]int   `json:"por_origen"`
	TasaConversion float64          `json:"tasa_conversion"` // convertidos / total, 0..1
	Serie30Dias    []SerieDiariaDTO `json:"serie_30_dias"`
}
