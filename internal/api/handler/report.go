package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/usecases/managing"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
)

// GetDailySummaryReport retorna o relatório gerencial com o consolidado de
// vendas por vendedor em uma data. O parâmetro date é opcional; o padrão é
// o dia anterior, último dia já fechado pelo cron de sincronização.
func GetDailySummaryReport(service managing.ManagingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		yesterday := time.Now().AddDate(0, 0, -1)

		date, err := parseDateParam(r.URL.Query().Get("date"), yesterday)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		report, err := service.GetDailySummaryReport(date)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, managing.ErrDatabaseOperation) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar resumo diário", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
