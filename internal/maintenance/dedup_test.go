package maintenance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/neopdv/backoffice-api/infrastructure/repository/mocks"
	"github.com/neopdv/backoffice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fakeTransactor executa a função diretamente, sem banco
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	return fn(nil)
}

func TestSaleSignature_ItemOrderDoesNotMatter(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	saleA := &domain.Sale{
		ID:            uuid.New(),
		Total:         120.50,
		PaymentMethod: "dinheiro",
		CreatedAt:     base,
		Items: []domain.SaleItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10, Subtotal: 20},
			{ProductID: "p2", Quantity: 1, UnitPrice: 100.5, Subtotal: 100.5},
		},
	}
	saleB := &domain.Sale{
		ID:            uuid.New(),
		Total:         120.50,
		PaymentMethod: "dinheiro",
		CreatedAt:     base.Add(time.Minute),
		Items: []domain.SaleItem{
			{ProductID: "p2", Quantity: 1, UnitPrice: 100.5, Subtotal: 100.5},
			{ProductID: "p1", Quantity: 2, UnitPrice: 10, Subtotal: 20},
		},
	}

	assert.Equal(t, saleSignature(saleA), saleSignature(saleB))
}

func TestSaleSignature_DifferentPaymentMethodDiffers(t *testing.T) {
	sale := &domain.Sale{
		Total:         50,
		PaymentMethod: "dinheiro",
		Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 1, Subtotal: 50}},
	}
	other := &domain.Sale{
		Total:         50,
		PaymentMethod: "mpesa",
		Items:         []domain.SaleItem{{ProductID: "p1", Quantity: 1, Subtotal: 50}},
	}

	assert.NotEqual(t, saleSignature(sale), saleSignature(other))
}

func TestChooseKeeper_PrefersSaleWithOperator(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	older := &domain.Sale{ID: uuid.New(), CreatedAt: base}
	withUser := &domain.Sale{ID: uuid.New(), UserID: &userID, CreatedAt: base.Add(time.Hour)}

	keeper := chooseKeeper([]*domain.Sale{older, withUser})
	assert.Equal(t, withUser.ID, keeper.ID)
}

func TestChooseKeeper_TieBreaksByOldest(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	first := &domain.Sale{ID: uuid.New(), UserID: &userID, CreatedAt: base}
	second := &domain.Sale{ID: uuid.New(), UserID: &userID, CreatedAt: base.Add(time.Minute)}

	keeper := chooseKeeper([]*domain.Sale{second, first})
	assert.Equal(t, first.ID, keeper.ID)
}

func TestCleanupDuplicateSales_RemovesCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	transactor := &fakeTransactor{}

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	items := []domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: 75, Subtotal: 75}}
	keeper := &domain.Sale{ID: uuid.New(), UserID: &userID, Total: 75, PaymentMethod: "dinheiro", CreatedAt: base, Items: items}
	duplicate := &domain.Sale{ID: uuid.New(), Total: 75, PaymentMethod: "dinheiro", CreatedAt: base.Add(time.Second), Items: items}
	unrelated := &domain.Sale{ID: uuid.New(), Total: 10, PaymentMethod: "mpesa", CreatedAt: base}

	mockSaleRepo.EXPECT().
		ListSalesWithItems(gomock.Any()).
		Return([]*domain.Sale{keeper, duplicate, unrelated}, nil)

	mockSaleRepo.EXPECT().
		DeleteSaleTx(gomock.Any(), gomock.Any(), duplicate.ID).
		Return(nil)

	result, err := CleanupDuplicateSales(context.Background(), transactor, mockSaleRepo)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.DuplicateGroups)
	assert.Equal(t, 1, result.SalesRemoved)
	assert.Equal(t, []uuid.UUID{duplicate.ID}, result.RemovedIDs)
	assert.Equal(t, 1, transactor.calls)
}

func TestCleanupDuplicateSales_NothingToRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	transactor := &fakeTransactor{}

	mockSaleRepo.EXPECT().
		ListSalesWithItems(gomock.Any()).
		Return([]*domain.Sale{
			{ID: uuid.New(), Total: 10, PaymentMethod: "dinheiro"},
			{ID: uuid.New(), Total: 20, PaymentMethod: "dinheiro"},
		}, nil)

	result, err := CleanupDuplicateSales(context.Background(), transactor, mockSaleRepo)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.SalesRemoved)
	// Sem duplicatas não abre transação
	assert.Equal(t, 0, transactor.calls)
}
