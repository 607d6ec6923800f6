package domain

import "time"

// DashboardSnapshot é a fotografia diária dos KPIs organizacionais gravada
// pelo agendador, usada para histórico barato sem reprocessar o período.
type DashboardSnapshot struct {
	ID             int64     `json:"id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	TotalRevenue   float64   `json:"total_revenue"`
	GrowthRate     float64   `json:"growth_rate"`
	InvoiceCount   float64   `json:"invoice_count"`
	AverageInvoice float64   `json:"average_invoice"`
	ActiveDealers  float64   `json:"active_dealers"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
