package domain

import "time"

// Status possíveis de uma venda futura
const (
	FutureSaleOpen   = "open"
	FutureSaleWon    = "won"
	FutureSaleLost   = "lost"
	FutureSaleClosed = "closed"
)

// FutureSale representa uma venda prevista sendo acompanhada pela equipe
// comercial antes de virar fatura.
type FutureSale struct {
	ID                string    `json:"id"`
	DealerID          int64     `json:"dealer_id"`
	RepID             *int64    `json:"rep_id"`
	Description       string    `json:"description"`
	Collection        *string   `json:"collection,omitempty"`
	EstimatedAmount   float64   `json:"estimated_amount"`
	ExpectedCloseDate string    `json:"expected_close_date"` // YYYY-MM-DD
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateFutureSaleRequest é o corpo de criação vindo do front.
// Os campos numéricos e de data chegam frouxos e passam pela mesma
// normalização usada nos resultados remotos.
type CreateFutureSaleRequest struct {
	DealerID          int64   `json:"dealer_id"`
	RepID             *int64  `json:"rep_id"`
	Description       string  `json:"description"`
	Collection        *string `json:"collection"`
	EstimatedAmount   any     `json:"estimated_amount"`
	ExpectedCloseDate string  `json:"expected_close_date"`
	Notes             string  `json:"notes"`
}
