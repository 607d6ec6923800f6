package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
)

func TestMapDashboardKPIs(t *testing.T) {
	tests := []struct {
		name     string
		record   looseRecord
		expected *domain.DashboardKPIs
	}{
		{
			name: "Números nativos do driver",
			record: looseRecord{
				"total_revenue":   358192.14,
				"growth_rate":     12.5,
				"invoice_count":   339.0,
				"average_invoice": 1056.61,
				"active_dealers":  18.0,
			},
			expected: &domain.DashboardKPIs{
				TotalRevenue:   358192.14,
				GrowthRate:     12.5,
				InvoiceCount:   339,
				AverageInvoice: 1056.61,
				ActiveDealers:  18,
			},
		},
		{
			name: "Numéricos do Postgres chegam como bytes e são coagidos",
			record: looseRecord{
				"total_revenue": []byte("358192.14"),
				"invoice_count": []byte("339"),
			},
			expected: &domain.DashboardKPIs{
				TotalRevenue: 358192.14,
				InvoiceCount: 339,
			},
		},
		{
			name:     "Registro vazio degrada para zeros",
			record:   looseRecord{},
			expected: &domain.DashboardKPIs{},
		},
		{
			name: "Campo corrompido vira zero sem derrubar o restante",
			record: looseRecord{
				"total_revenue": "lixo",
				"growth_rate":   nil,
				"invoice_count": 339.0,
			},
			expected: &domain.DashboardKPIs{
				InvoiceCount: 339,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapDashboardKPIs(tt.record))
		})
	}
}

func TestMapTopDealerItem(t *testing.T) {
	t.Run("Registro completo", func(t *testing.T) {
		item := mapTopDealerItem(looseRecord{
			"dealer_id":     1.0,
			"dealer_name":   "Linda Flooring",
			"revenue":       []byte("358192.14"),
			"invoices":      339.0,
			"revenue_share": "42.7",
		})

		assert.Equal(t, domain.TopDealerItem{
			DealerID:     1,
			DealerName:   "Linda Flooring",
			Revenue:      358192.14,
			Invoices:     339,
			RevenueShare: 42.7,
		}, item)
	})

	t.Run("Nome ausente vira placeholder sintético", func(t *testing.T) {
		item := mapTopDealerItem(looseRecord{
			"dealer_id": 12.0,
			"revenue":   100.0,
		})

		assert.Equal(t, "Dealer 12", item.DealerName)
	})
}

func TestMapTopRepItem(t *testing.T) {
	item := mapTopRepItem(looseRecord{
		"rep_id":  []byte("7"),
		"revenue": 5000.0,
	})

	assert.Equal(t, int64(7), item.RepID)
	assert.Equal(t, "Rep 7", item.RepName)
	assert.Equal(t, 5000.0, item.Revenue)
}

func TestMapDealerEngagementItem(t *testing.T) {
	tests := []struct {
		name           string
		record         looseRecord
		expectedActive bool
		expectedAtRisk bool
	}{
		{
			name: "Booleanos nativos",
			record: looseRecord{
				"dealer_id": 1.0,
				"active":    true,
				"at_risk":   false,
			},
			expectedActive: true,
			expectedAtRisk: false,
		},
		{
			name: "Booleanos como string do banco",
			record: looseRecord{
				"dealer_id": 1.0,
				"active":    "t",
				"at_risk":   []byte("1"),
			},
			expectedActive: true,
			expectedAtRisk: true,
		},
		{
			name: "Booleano como número",
			record: looseRecord{
				"dealer_id": 1.0,
				"active":    1.0,
				"at_risk":   0.0,
			},
			expectedActive: true,
			expectedAtRisk: false,
		},
		{
			name: "Valor irreconhecível cai no fallback false",
			record: looseRecord{
				"dealer_id": 1.0,
				"active":    "talvez",
			},
			expectedActive: false,
			expectedAtRisk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := mapDealerEngagementItem(tt.record)
			assert.Equal(t, tt.expectedActive, item.Active)
			assert.Equal(t, tt.expectedAtRisk, item.AtRisk)
		})
	}
}

func TestMapLogisticsSummaryItem(t *testing.T) {
	item := mapLogisticsSummaryItem(looseRecord{
		"warehouse":       "Miami",
		"month":           []byte("2025-08"),
		"deliveries":      120.0,
		"on_time_percent": "93.5",
		"freight_cost":    []byte("18250.40"),
		"delayed":         "f",
	})

	assert.Equal(t, domain.LogisticsSummaryItem{
		Warehouse:     "Miami",
		Month:         "2025-08",
		Deliveries:    120,
		OnTimePercent: 93.5,
		FreightCost:   18250.40,
		Delayed:       false,
	}, item)
}

func TestMapCategoryTotal(t *testing.T) {
	total := mapCategoryTotal(looseRecord{
		"collection": "Vinyl Plank",
		"revenue":    []byte("98000.00"),
		"share":      27.4,
	})

	assert.Equal(t, "Vinyl Plank", total.Collection)
	assert.Equal(t, 98000.0, total.Revenue)
	assert.Equal(t, 27.4, total.Share)
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "abc", coerceString("abc"))
	assert.Equal(t, "abc", coerceString([]byte("abc")))
	assert.Equal(t, "", coerceString(nil))
	assert.Equal(t, "", coerceString(42))
}
