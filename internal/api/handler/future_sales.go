package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/flooring-analytics-api/internal/domain"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/flooring-analytics-api/pkg/log"
)

// CreateFutureSale registra uma intenção de venda futura capturada pelo time
// comercial. Valores numéricos chegam frouxos do front e são normalizados
// pelo serviço.
func CreateFutureSale(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateFutureSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("future-sales: erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sale, err := service.CreateFutureSale(&req)
		if err != nil {
			logger.WithError(err).Error("future-sales: erro ao registrar venda futura")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"id":        sale.ID,
			"dealer_id": sale.DealerID,
		}).Info("future-sales: venda futura registrada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logger.WithError(err).Error("future-sales: erro ao codificar resposta")
		}
	})
}

// ListFutureSales lista as vendas futuras, opcionalmente filtradas por status.
func ListFutureSales(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sales, err := service.ListFutureSales(r.URL.Query().Get("status"))
		if err != nil {
			logger.WithError(err).Error("future-sales: erro ao listar vendas futuras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas futuras", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.WithError(err).Error("future-sales: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

type closeFutureSaleRequest struct {
	Status string `json:"status"`
}

// CloseFutureSale fecha uma venda futura como ganha, perdida ou encerrada.
func CloseFutureSale(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda futura não fornecido", nil)
			return
		}

		var req closeFutureSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("future-sales: erro ao decodificar requisição de fechamento")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.CloseFutureSale(id, req.Status); err != nil {
			logger.WithError(err).WithField("id", id).Error("future-sales: erro ao fechar venda futura")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"id":     id,
			"status": req.Status,
		}).Info("future-sales: venda futura fechada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}
