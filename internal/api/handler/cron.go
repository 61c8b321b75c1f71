package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/internal/scheduler"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goal-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailySummary = "daily-summary"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailySummarySyncService *scheduler.DailySummarySyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas gerentes podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleManager {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas gerentes podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeDailySummary:
			// Executar sincronização dos resumos diários
			if services.DailySummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de resumos diários não disponível", nil)
				return
			}
			services.DailySummarySyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DailySummarySyncService != nil {
				services.DailySummarySyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-summary, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas gerentes podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleManager {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas gerentes podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"daily-summary": services.DailySummarySyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
