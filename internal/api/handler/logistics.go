package handler

import (
	"net/http"

	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// GetLogisticsReport devolve o resumo mensal de entregas por armazém.
// Diferente do dashboard, aqui a falha remota derruba a resposta: o
// relatório é uma seção única.
func GetLogisticsReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).Warn("logistics: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		report, err := service.GetLogisticsReport(domain.DateRange{From: from, To: to})
		if err != nil {
			logger.WithError(err).Error("logistics: erro ao montar relatório de logística")
			apiErrors.WriteError(w, apiErrors.ErrRemoteProcedure, "Erro ao montar relatório de logística", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("logistics: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
