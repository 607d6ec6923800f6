package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/flooring-analytics-api/internal/scheduler"
	"github.com/vfg2006/flooring-analytics-api/pkg/apiErrors"
)

// RunDashboardSnapshotSync dispara manualmente a gravação do snapshot diário
// do dashboard. A sincronização roda em background; a resposta confirma só o
// disparo.
func RunDashboardSnapshotSync(snapshotSync *scheduler.DashboardSnapshotSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDashboardSnapshotSync")

		if snapshotSync == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot do dashboard não disponível", nil)
			return
		}

		snapshotSync.TriggerManualSync()

		response := map[string]any{
			"message": "Sincronização de snapshot do dashboard iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(snapshotSync *scheduler.DashboardSnapshotSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"dashboard-snapshot": snapshotSync.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
