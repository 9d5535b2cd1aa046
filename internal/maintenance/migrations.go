package maintenance

import (
	"context"
	"fmt"

	"github.com/neopdv/backoffice-api/infrastructure/database/postgres"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// columnMigration adiciona uma coluna quando ela ainda não existe
type columnMigration struct {
	table      string
	column     string
	definition string
}

// As migrações acompanham a evolução do esquema consumido pelos terminais:
// pesagem de itens, estoque fracionado, IVA e vínculo de vendedor
var columnMigrations = []columnMigration{
	{table: "itens_venda", column: "peso_kg", definition: "NUMERIC(10,3)"},
	{table: "produtos", column: "estoque_minimo", definition: "NUMERIC(12,3) DEFAULT 0"},
	{table: "produtos", column: "taxa_iva", definition: "NUMERIC(5,2) DEFAULT 0"},
	{table: "produtos", column: "codigo_imposto", definition: "VARCHAR(20)"},
	{table: "itens_venda", column: "taxa_iva", definition: "NUMERIC(5,2) DEFAULT 0"},
	{table: "itens_venda", column: "base_iva", definition: "NUMERIC(12,2) DEFAULT 0"},
	{table: "itens_venda", column: "valor_iva", definition: "NUMERIC(12,2) DEFAULT 0"},
	{table: "vendas", column: "usuario_id", definition: "UUID"},
	{table: "usuarios", column: "pode_fazer_devolucao", definition: "BOOLEAN DEFAULT FALSE"},
}

// Comandos executados depois das colunas, também idempotentes
var postMigrationStatements = []string{
	// Estoque fracionado para produtos vendidos por peso
	"ALTER TABLE produtos ALTER COLUMN estoque TYPE NUMERIC(12,3)",
	`DO $$ BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = 'vendas' AND constraint_name = 'fk_vendas_usuario_id'
		) THEN
			ALTER TABLE vendas ADD CONSTRAINT fk_vendas_usuario_id
				FOREIGN KEY (usuario_id) REFERENCES usuarios(id);
		END IF;
	END $$`,
}

// RunMigrations aplica as migrações de esquema pendentes. Cada passo verifica
// o estado atual antes de alterar, então rodar duas vezes é seguro
func RunMigrations(ctx context.Context, conn postgres.Queryer) error {
	for _, migration := range columnMigrations {
		applied, err := addColumnIfMissing(ctx, conn, migration)
		if err != nil {
			return errors.Wrapf(err, "erro na migração %s.%s", migration.table, migration.column)
		}

		if applied {
			logrus.WithFields(logrus.Fields{
				"table":  migration.table,
				"column": migration.column,
			}).Info("Coluna adicionada")
		} else {
			logrus.WithFields(logrus.Fields{
				"table":  migration.table,
				"column": migration.column,
			}).Debug("Coluna já existe, migração ignorada")
		}
	}

	for _, statement := range postMigrationStatements {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return errors.Wrap(err, "erro ao executar comando de migração")
		}
	}

	logrus.Info("Migrações concluídas com sucesso")
	return nil
}

func addColumnIfMissing(ctx context.Context, conn postgres.Queryer, migration columnMigration) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)`,
		migration.table, migration.column,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	if exists {
		return false, nil
	}

	statement := fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN %s %s",
		migration.table, migration.column, migration.definition,
	)
	if _, err := conn.Exec(ctx, statement); err != nil {
		return false, err
	}

	return true, nil
}
