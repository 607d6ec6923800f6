package analytics

import (
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// Todo campo numérico passa por CoerceNumber (fallback 0), todo booleano por
// CoerceBool (fallback false) e todo nome de exibição ganha um placeholder
// sintético quando vem vazio. Falha de coerção nunca vira erro: dado ruim de
// origem não pode derrubar uma página do dashboard.

func mapDashboardKPIs(record looseRecord) *domain.DashboardKPIs {
	return &domain.DashboardKPIs{
		TotalRevenue:   utils.CoerceNumber(record["total_revenue"], 0),
		GrowthRate:     utils.CoerceNumber(record["growth_rate"], 0),
		InvoiceCount:   utils.CoerceNumber(record["invoice_count"], 0),
		AverageInvoice: utils.CoerceNumber(record["average_invoice"], 0),
		ActiveDealers:  utils.CoerceNumber(record["active_dealers"], 0),
	}
}

func mapMonthlyTrendPoint(record looseRecord) domain.MonthlyTrendPoint {
	return domain.MonthlyTrendPoint{
		Month:    coerceString(record["month"]),
		Revenue:  utils.CoerceNumber(record["revenue"], 0),
		Invoices: utils.CoerceNumber(record["invoices"], 0),
	}
}

func mapTopDealerItem(record looseRecord) domain.TopDealerItem {
	dealerID := int64(utils.CoerceNumber(record["dealer_id"], 0))

	return domain.TopDealerItem{
		DealerID:     dealerID,
		DealerName:   utils.FallbackLabel(coerceString(record["dealer_name"]), "Dealer", dealerID),
		Revenue:      utils.CoerceNumber(record["revenue"], 0),
		Invoices:     utils.CoerceNumber(record["invoices"], 0),
		RevenueShare: utils.CoerceNumber(record["revenue_share"], 0),
	}
}

func mapTopRepItem(record looseRecord) domain.TopRepItem {
	repID := int64(utils.CoerceNumber(record["rep_id"], 0))

	return domain.TopRepItem{
		RepID:        repID,
		RepName:      utils.FallbackLabel(coerceString(record["rep_name"]), "Rep", repID),
		Revenue:      utils.CoerceNumber(record["revenue"], 0),
		Invoices:     utils.CoerceNumber(record["invoices"], 0),
		RevenueShare: utils.CoerceNumber(record["revenue_share"], 0),
	}
}

func mapCategoryTotal(record looseRecord) domain.CategoryTotal {
	return domain.CategoryTotal{
		Collection: coerceString(record["collection"]),
		Revenue:    utils.CoerceNumber(record["revenue"], 0),
		Share:      utils.CoerceNumber(record["share"], 0),
	}
}

func mapDealerEngagementItem(record looseRecord) domain.DealerEngagementItem {
	dealerID := int64(utils.CoerceNumber(record["dealer_id"], 0))

	return domain.DealerEngagementItem{
		DealerID:     dealerID,
		DealerName:   utils.FallbackLabel(coerceString(record["dealer_name"]), "Dealer", dealerID),
		LastInvoice:  coerceString(record["last_invoice"]),
		Orders90Days: utils.CoerceNumber(record["orders_90_days"], 0),
		Active:       utils.CoerceBool(record["active"], false),
		AtRisk:       utils.CoerceBool(record["at_risk"], false),
	}
}

func mapLogisticsSummaryItem(record looseRecord) domain.LogisticsSummaryItem {
	return domain.LogisticsSummaryItem{
		Warehouse:     coerceString(record["warehouse"]),
		Month:         coerceString(record["month"]),
		Deliveries:    utils.CoerceNumber(record["deliveries"], 0),
		OnTimePercent: utils.CoerceNumber(record["on_time_percent"], 0),
		FreightCost:   utils.CoerceNumber(record["freight_cost"], 0),
		Delayed:       utils.CoerceBool(record["delayed"], false),
	}
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
