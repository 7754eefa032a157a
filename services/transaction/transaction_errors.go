package transaction

import "fmt"

var (
	ErrTransactionNotFound = fmt.Errorf("transaction not found")
)
