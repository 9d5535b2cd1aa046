// Comando de relatório de vendas por vendedor. Lista as vendas com o vendedor
// responsável em formato de tabela, CSV ou JSON
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/neopdv/backoffice-api/infrastructure/repository"
	"github.com/neopdv/backoffice-api/internal/config"
	"github.com/neopdv/backoffice-api/internal/maintenance"
	"github.com/neopdv/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	limit := flag.Uint64("limit", 50, "número máximo de vendas")
	startDate := flag.String("data-inicio", "", "filtrar a partir da data (YYYY-MM-DD)")
	endDate := flag.String("data-fim", "", "filtrar até a data (YYYY-MM-DD)")
	operatorID := flag.String("usuario-id", "", "filtrar por vendedor")
	format := flag.String("formato", maintenance.FormatTable, "formato de saída: table, csv ou json")
	save := flag.Bool("salvar", false, "gravar o relatório em arquivo em vez de stdout")
	flag.Parse()

	start, err := utils.ParseDate(*startDate)
	if err != nil {
		logrus.Fatal("data-inicio inválida, use YYYY-MM-DD")
	}

	end, err := utils.ParseDate(*endDate)
	if err != nil {
		logrus.Fatal("data-fim inválida, use YYYY-MM-DD")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)

	opts := maintenance.ReportOptions{
		Limit:      *limit,
		StartDate:  start,
		EndDate:    end,
		OperatorID: *operatorID,
		Format:     *format,
	}

	out := os.Stdout
	if *save {
		out = createReportFile(*format)
		defer out.Close()
	}

	if err := maintenance.SalesByOperator(ctx, saleRepo, opts, out); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar relatório de vendas")
	}
}

// createReportFile abre um arquivo com sufixo aleatório, para execuções
// repetidas não sobrescreverem relatórios anteriores
func createReportFile(format string) *os.File {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar identificador do relatório")
	}

	extension := "txt"
	switch format {
	case maintenance.FormatCSV:
		extension = "csv"
	case maintenance.FormatJSON:
		extension = "json"
	}

	name := fmt.Sprintf("relatorio-vendas-%s.%s", id, extension)
	file, err := os.Create(name)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar arquivo do relatório")
	}

	logrus.WithField("arquivo", name).Info("Gravando relatório em arquivo")
	return file
}
