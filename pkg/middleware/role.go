package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goal-api/internal/domain"
	"github.com/vfg2006/sales-goal-api/pkg/apiErrors"
)

// Constantes para identificar os roles
const (
	RoleManager = 1
	RoleSeller  = 2
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é um array de IDs de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Obter claims do usuário do contexto
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			// Verificar se o role do usuário está na lista de roles permitidos
			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			// Se tiver permissão, continua para o próximo handler
			next.ServeHTTP(w, r)
		})
	}
}

// ManagerOnly é um middleware que permite acesso apenas para gerentes
func ManagerOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleManager})
}

// AllRoles é um middleware que permite acesso para gerentes e vendedores
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleManager, RoleSeller})
}

// SellerScope garante que um vendedor só acesse os próprios dados.
// O gerente passa direto; o vendedor precisa ter o seller_id da URL
// vinculado ao seu login.
func SellerScope(paramSellerID func(r *http.Request) int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if userClaims.UserRoleID == RoleManager {
				next.ServeHTTP(w, r)
				return
			}

			sellerID := paramSellerID(r)
			if userClaims.UserSellerID == nil || *userClaims.UserSellerID != sellerID {
				logrus.Warningf("Vendedor (user ID=%d) tentou acessar dados do vendedor ID=%d", userClaims.UserID, sellerID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você só pode consultar os seus próprios dados", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
