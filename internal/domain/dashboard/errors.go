package dashboard

import "errors"

// Доменные ошибки дашборда
var (
	ErrInvalidCustomerID = errors.New("invalid customer ID")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidWindow     = errors.New("history window must be between 1 and 60 months")
	ErrInvalidTopN       = errors.New("top N must be between 1 and 50")
	ErrTablesUnavailable = errors.New("tables are not available")
)
