// Package aggregating implementa o motor de agregação mensal: rollups por mês
// calendário, total geral e resumos por dealer/representante. Todas as funções
// daqui são puras e determinísticas para uma mesma ordem de entrada.
package aggregating

import (
	"sort"

	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// GroupByMonth agrupa as linhas em baldes de mês calendário.
// A chave do mês é o truncamento puro dos 7 primeiros caracteres da data
// (sem parse, sem fuso): uma data curta vira um balde próprio em vez de
// derrubar a agregação. Os baldes saem na ordem em que cada mês apareceu pela
// primeira vez; quem precisa de ordem cronológica usa GroupByMonthSorted.
// A soma é feita na ordem de iteração da entrada, o que é relevante para a
// reprodutibilidade bit a bit do total em ponto flutuante.
func GroupByMonth(rows []domain.SalesRow) []domain.MonthlyTotal {
	buckets := make([]domain.MonthlyTotal, 0)
	index := make(map[string]int)

	for _, row := range rows {
		key := monthKey(row.InvoiceDate)

		i, ok := index[key]
		if !ok {
			buckets = append(buckets, domain.MonthlyTotal{Month: key})
			i = len(buckets) - 1
			index[key] = i
		}

		// Valor não numérico contribui 0 mas ainda conta como linha
		buckets[i].Total += utils.CoerceNumber(row.InvoiceAmount, 0)
		buckets[i].Rows++
	}

	return buckets
}

// GroupByMonthSorted é a variante com saída em ordem cronológica de chave,
// para os gráficos de tendência. A acumulação é idêntica à de GroupByMonth.
func GroupByMonthSorted(rows []domain.SalesRow) []domain.MonthlyTotal {
	buckets := GroupByMonth(rows)

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})

	return buckets
}

// CalculateGrandTotal soma os valores de todas as linhas na ordem de entrada,
// sem arredondamento intermediário. O validador compara o resultado por
// igualdade exata, então a ordem da soma não pode mudar.
func CalculateGrandTotal(rows []domain.SalesRow) float64 {
	total := 0.0
	for _, row := range rows {
		total += utils.CoerceNumber(row.InvoiceAmount, 0)
	}

	return total
}

func monthKey(invoiceDate string) string {
	if len(invoiceDate) < 7 {
		return invoiceDate
	}
	return invoiceDate[:7]
}

// AverageInvoice calcula o ticket médio com guarda explícita de divisão por
// zero: nunca devolve NaN ou infinito.
func AverageInvoice(revenue float64, invoices int) float64 {
	if invoices <= 0 {
		return 0
	}
	return revenue / float64(invoices)
}

// RevenueShare calcula o percentual da receita sobre o total do pai.
// As fatias de todos os dealers de um representante não somam exatamente 100
// por causa das divisões independentes; isso é comportamento aceito e não é
// normalizado aqui.
func RevenueShare(revenue, parentTotal float64) float64 {
	if parentTotal <= 0 {
		return 0
	}
	return revenue / parentTotal * 100
}

// AggregateByDealer resume as linhas de um representante por dealer, com a
// fatia de receita calculada sobre parentTotal. O resultado sai ranqueado por
// receita decrescente para as visões de drill-down.
func AggregateByDealer(rows []domain.SalesRow, parentTotal float64) []domain.DealerAggregate {
	aggregates := make([]domain.DealerAggregate, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.CustomerID]
		if !ok {
			aggregates = append(aggregates, domain.DealerAggregate{DealerID: row.CustomerID})
			i = len(aggregates) - 1
			index[row.CustomerID] = i
		}

		aggregates[i].Revenue += utils.CoerceNumber(row.InvoiceAmount, 0)
		aggregates[i].Invoices++
	}

	for i := range aggregates {
		aggregates[i].AverageInvoice = AverageInvoice(aggregates[i].Revenue, aggregates[i].Invoices)
		aggregates[i].RevenueShare = RevenueShare(aggregates[i].Revenue, parentTotal)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Revenue > aggregates[j].Revenue
	})

	return aggregates
}
