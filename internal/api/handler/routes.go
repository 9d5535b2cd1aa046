package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/neopdv/backoffice-api/internal/api/handler/router"
	"github.com/neopdv/backoffice-api/internal/usecases/expensing"
	"github.com/neopdv/backoffice-api/internal/usecases/metering"
	"github.com/neopdv/backoffice-api/internal/usecases/printing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service metering.MetricsProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics/daily-sales",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/metrics/monthly-sales",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/metrics/inventory",
			Method:  http.MethodGet,
			Handler: GetInventoryMetrics(service),
		},
	}
}

func Expenses(service expensing.ExpenseService) []router.Route {
	return []router.Route{
		{
			Path:    "/expenses",
			Method:  http.MethodGet,
			Handler: ListExpenses(service),
		},
		{
			Path:    "/expenses",
			Method:  http.MethodPost,
			Handler: CreateExpense(service),
		},
		{
			Path:    "/expenses/total",
			Method:  http.MethodGet,
			Handler: GetExpensesTotal(service),
		},
		{
			Path:    "/expenses/history",
			Method:  http.MethodGet,
			Handler: GetExpenseHistory(service),
		},
		{
			Path:    "/expenses/:id",
			Method:  http.MethodPut,
			Handler: UpdateExpense(service),
		},
		{
			Path:    "/expenses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExpense(service),
		},
	}
}

func ExpenseCategories(service expensing.ExpenseService) []router.Route {
	return []router.Route{
		{
			Path:    "/expenses/categories",
			Method:  http.MethodGet,
			Handler: ListExpenseCategories(service),
		},
		{
			Path:    "/expenses/categories",
			Method:  http.MethodPost,
			Handler: CreateExpenseCategory(service),
		},
	}
}

func Printers(service printing.PrinterService) []router.Route {
	return []router.Route{
		{
			Path:    "/printers",
			Method:  http.MethodGet,
			Handler: ListPrinters(service),
		},
	}
}
