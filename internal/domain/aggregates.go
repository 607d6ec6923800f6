package domain

import "time"

// DealerAggregate resume as vendas de um dealer dentro de um recorte de datas.
type DealerAggregate struct {
	DealerID       int64   `json:"dealer_id"`
	DealerName     string  `json:"dealer_name"`
	Revenue        float64 `json:"revenue"`
	Invoices       int     `json:"invoices"`
	AverageInvoice float64 `json:"average_invoice"`
	RevenueShare   float64 `json:"revenue_share"` // percentual sobre o total do pai
}

// RepAggregate resume as vendas de um representante dentro de um recorte de datas.
type RepAggregate struct {
	RepID          int64   `json:"rep_id"`
	RepName        string  `json:"rep_name"`
	Revenue        float64 `json:"revenue"`
	Invoices       int     `json:"invoices"`
	AverageInvoice float64 `json:"average_invoice"`
	RevenueShare   float64 `json:"revenue_share"`
}

// RepPerformanceResponse é a carga da página de drill-down de um representante.
type RepPerformanceResponse struct {
	Rep      RepAggregate      `json:"rep"`
	Monthly  []MonthlyTotal    `json:"monthly"`
	Dealers  []DealerAggregate `json:"dealers"`
	Filters  *DateRange        `json:"filters,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// DealerPerformanceResponse é a carga da página de drill-down de um dealer.
type DealerPerformanceResponse struct {
	Dealer  DealerAggregate `json:"dealer"`
	Monthly []MonthlyTotal  `json:"monthly"`
	Filters *DateRange      `json:"filters,omitempty"`
}

// DateRange é o recorte {from, to} usado em todas as consultas de métricas.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
