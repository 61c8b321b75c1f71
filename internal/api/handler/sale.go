package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/internal/usecases/selling"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
	"github.com/vfg2006/sales-goal-api/pkg/middleware"
	"github.com/vfg2006/sales-goal-api/pkg/utils"
)

// parseDateParam converte uma data no formato yyyy-mm-dd. Quando o valor é
// vazio, retorna o fallback informado.
func parseDateParam(value string, fallback time.Time) (time.Time, error) {
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}

	if parsed.IsZero() {
		return fallback, nil
	}

	return *parsed, nil
}

// CreateSale registra uma venda individual. Vendedores só podem registrar
// vendas para si mesmos; gerentes podem registrar para qualquer vendedor.
func CreateSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		var req domain.CreateSaleRequest
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

		// Vendedor autenticado: a venda precisa ser do próprio vendedor
		if userClaims.UserRoleID != middleware.RoleManager {
			if userClaims.UserSellerID == nil || *userClaims.UserSellerID != req.SellerID {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você só pode registrar vendas para si mesmo", nil)
				return
			}
		}

		saleDate, err := parseDateParam(req.SaleDate, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data da venda inválida, use o formato yyyy-mm-dd", nil)
			return
		}

		sale, err := service.RecordSale(req.SellerID, req.Amount, saleDate)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(sale)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSales lista as vendas de um vendedor no período informado.
// start_date e end_date são opcionais; o padrão é o mês corrente até hoje.
func ListSales(service selling.SellingService) http.HandlerFunc {
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

		sales, err := service.ListSales(sellerID, startDate, endDate)
		if err != nil {
			logrus.Error(err)
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sales)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleSellingError mapeia os erros do usecase de vendas para a resposta da API
func handleSellingError(w http.ResponseWriter, err error) {
	var sellingErr *selling.SellingError
	if errors.As(err, &sellingErr) {
		apiErrors.WriteError(w, sellingErr.Code, sellingErr.Error(), map[string]any{
			"seller_id": sellingErr.SellerID,
		})
		return
	}

	switch {
	case errors.Is(err, selling.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado ou inativo", nil)

	case errors.Is(err, selling.ErrNegativeAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	case errors.Is(err, selling.ErrInvalidOutcome), errors.Is(err, selling.ErrCustomerRequired), errors.Is(err, selling.ErrSellerRequired):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, selling.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados de vendas", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
