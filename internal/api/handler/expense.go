package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/neopdv/backoffice-api/internal/usecases/expensing"
	"github.com/neopdv/backoffice-api/pkg/apiErrors"
	"github.com/neopdv/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 300

// ListExpenses lista despesas filtradas por situação, categoria, tipo e
// período (start_date/end_date em YYYY-MM-DD)
func ListExpenses(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		closed, _ := strconv.ParseBool(query.Get("closed"))

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use YYYY-MM-DD", nil)
			return
		}

		filters := &domain.ExpenseFilters{
			Closed:    closed,
			Category:  query.Get("category"),
			Type:      query.Get("type"),
			StartDate: startDate,
			EndDate:   endDate,
		}

		expenses, err := service.ListExpenses(r.Context(), filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar despesas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar despesas", nil)
			return
		}

		writeJSON(w, expenses)
	}
}

// GetExpensesTotal retorna a soma das despesas, abertas ou fechadas conforme o
// parâmetro "closed"
func GetExpensesTotal(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		closed, _ := strconv.ParseBool(r.URL.Query().Get("closed"))

		total, err := service.TotalExpenses(r.Context(), closed)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular total de despesas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular total de despesas", nil)
			return
		}

		writeJSON(w, map[string]float64{"total": total})
	}
}

// GetExpenseHistory retorna as despesas mais recentes, limitadas pelo
// parâmetro "limit"
func GetExpenseHistory(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultHistoryLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		expenses, err := service.ExpenseHistory(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar histórico de despesas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de despesas", nil)
			return
		}

		writeJSON(w, expenses)
	}
}

func CreateExpense(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		expense, err := service.CreateExpense(r.Context(), &req)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(expense); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

func UpdateExpense(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")

		var req domain.UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		expense, err := service.UpdateExpense(r.Context(), id, &req)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, expense)
	}
}

func DeleteExpense(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")

		if err := service.DeleteExpense(r.Context(), id); err != nil {
			writeExpenseError(w, err)
			return
		}

		writeJSON(w, map[string]bool{"ok": true})
	}
}

func ListExpenseCategories(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar categorias de despesa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias de despesa", nil)
			return
		}

		writeJSON(w, categories)
	}
}

func CreateExpenseCategory(service expensing.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		category, err := service.CreateCategory(r.Context(), req.Name)
		if err != nil {
			writeExpenseError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(category); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// writeExpenseError traduz os erros do serviço de despesas para o formato
// padronizado da API
func writeExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expensing.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, expensing.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, expensing.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, expensing.ErrInvalidID):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, expensing.ErrCategoryNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, expensing.ErrExpenseNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro na operação de despesas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na operação de despesas", nil)
	}
}
