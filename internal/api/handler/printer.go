package handler

import (
	"net/http"

	"github.com/neopdv/backoffice-api/internal/usecases/printing"
	"github.com/neopdv/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListPrinters retorna as impressoras cadastradas para os terminais de venda
func ListPrinters(service printing.PrinterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		printers, err := service.ListPrinters(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar impressoras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar impressoras", nil)
			return
		}

		writeJSON(w, printers)
	}
}
