package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// GetRepPerformance monta a página de desempenho de um representante.
// Para o representante da conta vigiada, a conferência contábil roda junto
// e pode interromper a página fora de produção.
func GetRepPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		repID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			logger.WithError(err).Warn("rep-performance: identificador de representante inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do representante inválido", nil)
			return
		}

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).WithField("rep_id", repID).Warn("rep-performance: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		response, err := service.GetRepPerformance(repID, domain.DateRange{From: from, To: to})
		if err != nil {
			logger.WithError(err).WithField("rep_id", repID).Error("rep-performance: erro ao montar página de desempenho")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar página de desempenho", nil)
			return
		}

		logger.WithFields(log.Fields{
			"rep_id":   repID,
			"invoices": response.Rep.Invoices,
			"dealers":  len(response.Dealers),
		}).Info("rep-performance: página de desempenho montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("rep-performance: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDealerPerformance monta a página de desempenho de um dealer.
func GetDealerPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dealerID, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil {
			logger.WithError(err).Warn("dealer-performance: identificador de dealer inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do dealer inválido", nil)
			return
		}

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).WithField("dealer_id", dealerID).Warn("dealer-performance: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		response, err := service.GetDealerPerformance(dealerID, domain.DateRange{From: from, To: to})
		if err != nil {
			logger.WithError(err).WithField("dealer_id", dealerID).Error("dealer-performance: erro ao montar página de desempenho")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar página de desempenho", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dealer-performance: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
