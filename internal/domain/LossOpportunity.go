package domain

import "time"

// LossOpportunity registra uma oportunidade perdida para um concorrente,
// alimentando o relatório de perdas do dashboard.
type LossOpportunity struct {
	ID              string    `json:"id"`
	DealerID        int64     `json:"dealer_id"`
	RepID           *int64    `json:"rep_id"`
	Reason          string    `json:"reason"`
	Competitor      string    `json:"competitor,omitempty"`
	Collection      *string   `json:"collection,omitempty"`
	EstimatedAmount float64   `json:"estimated_amount"`
	LostAt          string    `json:"lost_at"` // YYYY-MM-DD
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateLossOpportunityRequest é o corpo de captura vindo do front.
type CreateLossOpportunityRequest struct {
	DealerID        int64   `json:"dealer_id"`
	RepID           *int64  `json:"rep_id"`
	Reason          string  `json:"reason"`
	Competitor      string  `json:"competitor"`
	Collection      *string `json:"collection"`
	EstimatedAmount any     `json:"estimated_amount"`
	LostAt          string  `json:"lost_at"`
	Notes           string  `json:"notes"`
}
