package reconciling

import "time"

// Tabela de expectativa congelada da conta Linda Flooring (dealer 1, carteira
// do Juan Pedro Boscan). Existe para pegar regressão de um bug histórico de
// importação dessa conta: é um snapshot conhecido-bom cravado, não um
// framework de qualidade de dados. Não generalizar nem "corrigir" os valores.
var lindaFlooringTable = ExpectationTable{
	Account:    "Linda Flooring",
	DealerID:   1,
	RepName:    "Juan Pedro Boscan",
	GrandTotal: 358192.14,
	Months: []Expectation{
		{Month: "2025-01", Total: 25684.40, Rows: 32},
		{Month: "2025-02", Total: 31208.90, Rows: 41},
		{Month: "2025-03", Total: 28774.15, Rows: 35},
		{Month: "2025-04", Total: 70187.36, Rows: 49},
		{Month: "2025-05", Total: 35910.44, Rows: 44},
		{Month: "2025-06", Total: 30122.07, Rows: 38},
		{Month: "2025-07", Total: 22450.68, Rows: 27},
		{Month: "2025-08", Total: 46780.58, Rows: 51},
		{Month: "2025-09", Total: 67073.56, Rows: 22},
	},
	From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
}

// LindaFlooringTable devolve uma cópia da tabela congelada usada na fiação
// padrão do validador.
func LindaFlooringTable() ExpectationTable {
	table := lindaFlooringTable
	table.Months = append([]Expectation(nil), lindaFlooringTable.Months...)
	return table
}
