package domain

import "time"

// DashboardKPIs são os indicadores organizacionais calculados por função
// armazenada no banco.
type DashboardKPIs struct {
	TotalRevenue   float64 `json:"total_revenue"`
	GrowthRate     float64 `json:"growth_rate"` // percentual frente ao período anterior
	InvoiceCount   float64 `json:"invoice_count"`
	AverageInvoice float64 `json:"average_invoice"`
	ActiveDealers  float64 `json:"active_dealers"`
}

// MonthlyTrendPoint é um ponto do gráfico de tendência mensal.
type MonthlyTrendPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Invoices float64 `json:"invoices"`
}

// TopDealerItem é uma linha do ranking de dealers por receita.
type TopDealerItem struct {
	DealerID     int64   `json:"dealer_id"`
	DealerName   string  `json:"dealer_name"`
	Revenue      float64 `json:"revenue"`
	Invoices     float64 `json:"invoices"`
	RevenueShare float64 `json:"revenue_share"`
}

// TopRepItem é uma linha do ranking de representantes por receita.
type TopRepItem struct {
	RepID        int64   `json:"rep_id"`
	RepName      string  `json:"rep_name"`
	Revenue      float64 `json:"revenue"`
	Invoices     float64 `json:"invoices"`
	RevenueShare float64 `json:"revenue_share"`
}

// CategoryTotal é a receita agregada por coleção de produto.
type CategoryTotal struct {
	Collection string  `json:"collection"`
	Revenue    float64 `json:"revenue"`
	Share      float64 `json:"share"`
}

// DealerEngagementItem indica o nível de atividade recente de um dealer.
type DealerEngagementItem struct {
	DealerID     int64   `json:"dealer_id"`
	DealerName   string  `json:"dealer_name"`
	LastInvoice  string  `json:"last_invoice"` // YYYY-MM-DD
	Orders90Days float64 `json:"orders_90_days"`
	Active       bool    `json:"active"`
	AtRisk       bool    `json:"at_risk"`
}

// Panel é o envelope seguro de uma seção do dashboard: uma métrica que falha
// degrada para o valor padrão sem derrubar as seções vizinhas.
type Panel struct {
	Data  any    `json:"data"`
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// DashboardResponse agrega todas as seções de uma renderização do dashboard.
type DashboardResponse struct {
	KPIs         Panel      `json:"kpis"`
	MonthlyTrend Panel      `json:"monthly_trend"`
	TopDealers   Panel      `json:"top_dealers"`
	TopReps      Panel      `json:"top_reps"`
	Categories   Panel      `json:"categories"`
	Engagement   Panel      `json:"engagement"`
	Filters      *DateRange `json:"filters,omitempty"`
	GeneratedAt  time.Time  `json:"generated_at"`
}
