package handler

import (
	"net/http"

	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
	"github.com/vfg2006/flooring-analytics-api/pkg/utils"
)

// CreateLossOpportunity registra uma oportunidade perdida para um concorrente.
func CreateLossOpportunity(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateLossOpportunityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("loss-opportunities: erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		loss, err := service.CreateLossOpportunity(&req)
		if err != nil {
			logger.WithError(err).Error("loss-opportunities: erro ao registrar oportunidade perdida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"id":        loss.ID,
			"dealer_id": loss.DealerID,
		}).Info("loss-opportunities: oportunidade perdida registrada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(loss); err != nil {
			logger.WithError(err).Error("loss-opportunities: erro ao codificar resposta")
		}
	})
}

// ListLossOpportunities lista as oportunidades perdidas dentro do recorte.
func ListLossOpportunities(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		if err != nil {
			logger.WithError(err).Warn("loss-opportunities: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Intervalo de datas inválido", nil)
			return
		}

		losses, err := service.ListLossOpportunities(domain.DateRange{From: from, To: to})
		if err != nil {
			logger.WithError(err).Error("loss-opportunities: erro ao listar oportunidades perdidas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar oportunidades perdidas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(losses); err != nil {
			logger.WithError(err).Error("loss-opportunities: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
