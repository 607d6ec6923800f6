package handler

import (
	"net/http"

	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// GetDashboard renderiza o dashboard organizacional para o recorte {from,to}.
// As métricas são buscadas em paralelo e cada seção degrada isoladamente.
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).Warn("dashboard: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		period := domain.DateRange{From: from, To: to}

		logger.WithFields(log.Fields{
			"from": period.From,
			"to":   period.To,
		}).Info("dashboard: renderizando dashboard organizacional")

		response := service.GetDashboard(period)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDashboardHistory devolve as fotografias diárias gravadas pelo agendador.
func GetDashboardHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).Warn("dashboard-history: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		snapshots, err := service.GetDashboardHistory(domain.DateRange{From: from, To: to})
		if err != nil {
			logger.WithError(err).Error("dashboard-history: erro ao buscar snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("dashboard-history: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
