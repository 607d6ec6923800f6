package domain

// LogisticsSummaryItem é o resumo mensal de entregas de um armazém,
// calculado por função armazenada no banco.
type LogisticsSummaryItem struct {
	Warehouse     string  `json:"warehouse"`
	Month         string  `json:"month"` // YYYY-MM
	Deliveries    float64 `json:"deliveries"`
	OnTimePercent float64 `json:"on_time_percent"`
	FreightCost   float64 `json:"freight_cost"`
	Delayed       bool    `json:"delayed"` // verdadeiro quando o mês fechou com atraso médio
}
