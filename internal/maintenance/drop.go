package maintenance

import (
	"context"
	"fmt"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DropAllTables remove todas as tabelas do schema public, com CASCADE para
// resolver as chaves estrangeiras. Usado apenas para reset completo de
// ambientes de teste
func DropAllTables(ctx context.Context, conn postgres.Queryer) error {
	tables, err := listPublicTables(ctx, conn)
	if err != nil {
		return errors.Wrap(err, "erro ao listar tabelas")
	}

	if len(tables) == 0 {
		logrus.Info("Nenhuma tabela encontrada para remover")
		return nil
	}

	logrus.WithField("tabelas", tables).Infof("Removendo %d tabelas", len(tables))

	for _, table := range tables {
		statement := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := conn.Exec(ctx, statement); err != nil {
			return errors.Wrapf(err, "erro ao remover tabela %s", table)
		}
		logrus.WithField("tabela", table).Info("Tabela removida")
	}

	remaining, err := listPublicTables(ctx, conn)
	if err != nil {
		return errors.Wrap(err, "erro ao verificar tabelas restantes")
	}
	if len(remaining) > 0 {
		logrus.WithField("tabelas", remaining).Warnf("%d tabelas ainda existem", len(remaining))
		return nil
	}

	logrus.Info("Todas as tabelas foram removidas com sucesso")
	return nil
}

func listPublicTables(ctx context.Context, conn postgres.Queryer) ([]string, error) {
	rows, err := conn.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}
