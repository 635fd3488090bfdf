package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Código do MySQL para violação de chave única.
const mysqlErrDuplicateEntry = 1062

// duplicado reconhece a violação de constraint UNIQUE do banco. É o sinal
// autoritativo de duplicidade; o pré-check dos serviços é só caminho rápido.
func duplicado(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
