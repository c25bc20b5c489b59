package executor_factory

import (
	"context"

	"github.com/shelterhub/shelter-backend/repositories"
)

// TransactionReturnValue runs fn inside a transaction and forwards its return
// value once the transaction commits.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
