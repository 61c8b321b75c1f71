package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goal-api/pkg/utils"
)

// DailyGoalResponse é a visão da meta diária enviada ao cliente, com os
// valores monetários arredondados para duas casas. O arredondamento é só de
// apresentação: o motor calcula e compara com o quociente exato.
type DailyGoalResponse struct {
	SellerID       int     `json:"seller_id"`
	Date           string  `json:"date"`
	MonthlyQuota   float64 `json:"monthly_quota"`
	RealizedToDate float64 `json:"realized_to_date"`
	Remaining      float64 `json:"remaining"`
	DailyTarget    float64 `json:"daily_target"`
	Source         string  `json:"source"`
}

func newDailyGoalResponse(goal *domain.ComputedGoal) DailyGoalResponse {
	return DailyGoalResponse{
		SellerID:       goal.SellerID,
		Date:           goal.Date.Format(time.DateOnly),
		MonthlyQuota:   utils.RoundWithTwoDecimalPlace(goal.MonthlyQuota),
		RealizedToDate: utils.RoundWithTwoDecimalPlace(goal.RealizedToDate),
		Remaining:      utils.RoundWithTwoDecimalPlace(goal.Remaining),
		DailyTarget:    utils.RoundWithTwoDecimalPlace(goal.DailyTarget),
		Source:         goal.Source,
	}
}

// GetDailyGoal retorna a meta diária do vendedor para a data informada.
// O parâmetro date é opcional; o padrão é o dia corrente.
func GetDailyGoal(service goaling.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID := sellerIDFromPath(r)
		if sellerID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		date, err := parseDateParam(r.URL.Query().Get("date"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		goal, err := service.GetDailyGoal(sellerID, date)
		if err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(newDailyGoalResponse(goal))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SetGoalOverride grava a meta manual de um vendedor para uma data.
// A operação é idempotente: um novo valor para o mesmo par sobrescreve o anterior.
func SetGoalOverride(service goaling.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetGoalOverride")

		sellerID := sellerIDFromPath(r)
		if sellerID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		var req domain.SetOverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da meta não fornecida", nil)
			return
		}

		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		err = service.SetOverride(sellerID, *parsed, req.Amount)
		if err != nil {
			logrus.Error(err)
			handleGoalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// handleGoalError mapeia os erros do motor de metas para a resposta da API
func handleGoalError(w http.ResponseWriter, err error) {
	var goalErr *goaling.GoalError
	if errors.As(err, &goalErr) {
		apiErrors.WriteError(w, goalErr.Code, goalErr.Error(), map[string]any{
			"seller_id": goalErr.SellerID,
		})
		return
	}

	switch {
	case errors.Is(err, goaling.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado ou inativo", nil)

	case errors.Is(err, goaling.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	case errors.Is(err, goaling.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, err.Error(), nil)

	case errors.Is(err, goaling.ErrDependency):
		apiErrors.WriteError(w, apiErrors.ErrDependencyFailure, "Não foi possível calcular a meta", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
