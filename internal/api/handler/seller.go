package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/internal/usecases/managing"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
)

// sellerIDFromPath extrai o parâmetro :id das rotas de vendedor. Retorna 0
// quando o parâmetro está ausente ou não é numérico.
func sellerIDFromPath(r *http.Request) int {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0
	}
	return id
}

// CreateSeller cadastra um novo vendedor
func CreateSeller(service managing.ManagingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSeller")

		var seller *domain.Seller
		if err := json.NewDecoder(r.Body).Decode(&seller); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		seller, err := service.CreateSeller(seller)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(seller)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSeller retorna um vendedor por ID
func GetSeller(service managing.ManagingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sellerIDFromPath(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		seller, err := service.GetSeller(id)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(seller)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSellers lista os vendedores cadastrados.
// O parâmetro opcional only_active=true restringe aos vendedores ativos.
func ListSellers(service managing.ManagingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := r.URL.Query().Get("only_active") == "true"

		sellers, err := service.ListSellers(onlyActive)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sellers)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSeller atualiza parcialmente um vendedor. Campos omitidos no corpo
// da requisição são preservados.
func UpdateSeller(service managing.ManagingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSeller")

		id := sellerIDFromPath(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
			return
		}

		var updateReq domain.UpdateSellerRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		err := service.UpdateSeller(&updateReq)
		if err != nil {
			logrus.Error(err)
			handleSellerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// handleSellerError mapeia os erros do usecase de administração para a resposta da API
func handleSellerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, managing.ErrSellerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSellerNotFound, "Vendedor não encontrado", nil)

	case errors.Is(err, managing.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, managing.ErrNegativeQuota), errors.Is(err, managing.ErrNegativeTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAmount, err.Error(), nil)

	case errors.Is(err, managing.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dados de vendedores", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
