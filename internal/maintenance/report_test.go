package maintenance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/repository/mocks"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func sampleReportRows() []*domain.SaleOperatorRow {
	operatorID := "op-1"
	operatorName := "Maria"
	return []*domain.SaleOperatorRow{
		{
			SaleID:        "venda-1",
			Total:         150.0,
			Discount:      10.0,
			PaymentMethod: "dinheiro",
			CreatedAt:     time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC),
			OperatorID:    &operatorID,
			OperatorName:  &operatorName,
			ItemCount:     3,
		},
		{
			SaleID:        "venda-2",
			Total:         80.0,
			PaymentMethod: "mpesa",
			CreatedAt:     time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
			ItemCount:     1,
		},
	}
}

func TestSalesByOperator_TableFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListSalesWithOperators(gomock.Any(), uint64(50), gomock.Nil(), gomock.Nil(), "").
		Return(sampleReportRows(), nil)

	var out bytes.Buffer
	err := SalesByOperator(context.Background(), mockSaleRepo, ReportOptions{Limit: 50, Format: FormatTable}, &out)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Maria")
	assert.Contains(t, out.String(), "MT 150.00")
	// Venda sem vendedor aparece como N/A
	assert.Contains(t, out.String(), "N/A")
}

func TestSalesByOperator_CSVFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListSalesWithOperators(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleReportRows(), nil)

	var out bytes.Buffer
	err := SalesByOperator(context.Background(), mockSaleRepo, ReportOptions{Format: FormatCSV}, &out)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "venda_id,data,total,desconto,forma_pagamento,vendedor,qtd_itens")
	assert.Contains(t, out.String(), "venda-1")
	assert.Contains(t, out.String(), "150.00")
}

func TestSalesByOperator_JSONFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListSalesWithOperators(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleReportRows(), nil)

	var out bytes.Buffer
	err := SalesByOperator(context.Background(), mockSaleRepo, ReportOptions{Format: FormatJSON}, &out)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), `"venda_id": "venda-1"`)
	assert.Contains(t, out.String(), `"forma_pagamento": "dinheiro"`)
}

func TestSalesByOperator_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().
		ListSalesWithOperators(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleReportRows(), nil)

	var out bytes.Buffer
	err := SalesByOperator(context.Background(), mockSaleRepo, ReportOptions{Format: "xml"}, &out)

	assert.Error(t, err)
}
