package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-velocity-api/internal/domain"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-velocity-api/pkg/apiErrors"
	"github.com/vfg2006/retail-velocity-api/pkg/middleware"
)

// GetDashboard retorna as métricas consolidadas do painel principal
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard, err := service.Dashboard(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao montar o dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard", nil)
			return
		}

		writeJSON(w, dashboard)
	}
}

// GetStoreStats retorna o desempenho por loja e o consolidado por bandeira
func GetStoreStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := service.StoreStats(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao buscar estatísticas das lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas das lojas", nil)
			return
		}

		writeJSON(w, stats)
	}
}

// GetSKUVelocity retorna o giro de cada SKU (média por semana ativa)
func GetSKUVelocity(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		velocity, err := service.Velocity(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao calcular giro dos SKUs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular giro dos SKUs", nil)
			return
		}

		writeJSON(w, velocity)
	}
}

// ListSKUs lista os SKUs cadastrados do usuário
func ListSKUs(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		skus, err := service.ListSKUs(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao listar SKUs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar SKUs", nil)
			return
		}

		writeJSON(w, skus)
	}
}

// ListStores lista as lojas cadastradas do usuário
func ListStores(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stores, err := service.ListStores(userClaims.UserID)
		if err != nil {
			logrus.Error("Erro ao listar lojas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		writeJSON(w, stores)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
