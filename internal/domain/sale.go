package domain

// SalesRow representa uma linha de fatura vinda do banco gerenciado.
// O campo InvoiceAmount é deliberadamente frouxo (any): a origem pode devolver
// números como string ou NULL, e a agregação trata qualquer valor não numérico
// como 0 sem descartar a linha.
type SalesRow struct {
	InvoiceDate   string  `json:"invoice_date"` // ISO YYYY-MM-DD
	InvoiceAmount any     `json:"invoice_amount"`
	CustomerID    int64   `json:"customer_id"`
	RepID         *int64  `json:"rep_id"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	Collection    *string `json:"collection,omitempty"`
}

// MonthlyTotal é um balde de agregação mensal.
// A chave Month é derivada por truncamento puro de string (7 primeiros
// caracteres da data), sem conversão de fuso horário.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
	Rows  int     `json:"rows"`
}
