package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/internal/usecases/selling"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goal-api/pkg/middleware"
)

// CreateAttendance registra um atendimento de cliente, com ou sem venda.
// Vendedores só podem registrar atendimentos para si mesmos.
func CreateAttendance(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAttendance")

		var req domain.CreateAttendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserRoleID != middleware.RoleManager {
			if userClaims.UserSellerID == nil || *userClaims.UserSellerID != req.SellerID {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você só pode registrar atendimentos para si mesmo", nil)
				return
			}
		}

		date, err := parseDateParam(req.Date, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data do atendimento inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		attendance, err := service.RecordAttendance(&domain.Attendance{
			SellerID:     req.SellerID,
			CustomerName: req.CustomerName,
			Outcome:      req.Outcome,
			Notes:        req.Notes,
			Date:         date,
		})
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(attendance)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListAttendances lista os atendimentos de um vendedor no período informado.
// start_date e end_date são opcionais; o padrão é o mês corrente até hoje.
func ListAttendances(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID := sellerIDFromPath(r)
		if sellerID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		now := time.Now()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		startDate, err := parseDateParam(r.URL.Query().Get("start_date"), firstOfMonth)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data inicial inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		endDate, err := parseDateParam(r.URL.Query().Get("end_date"), now)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data final inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		attendances, err := service.ListAttendances(sellerID, startDate, endDate)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(attendances)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
