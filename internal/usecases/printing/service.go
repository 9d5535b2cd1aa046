package printing

import (
	"context"

	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/domain"
)

// PrinterService lista as impressoras cadastradas para sincronização dos
// terminais NeoPDV
type PrinterService interface {
	ListPrinters(ctx context.Context) ([]*domain.Printer, error)
}

type service struct {
	printerRepository repository.PrinterRepository
}

func NewService(printerRepo repository.PrinterRepository) PrinterService {
	return &service{
		printerRepository: printerRepo,
	}
}

func (s *service) ListPrinters(ctx context.Context) ([]*domain.Printer, error) {
	return s.printerRepository.ListPrinters(ctx)
}
