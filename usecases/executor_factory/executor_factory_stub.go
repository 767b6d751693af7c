package executor_factory

import (
	"context"

	"github.com/crewledger/crewpay-backend/repositories"
)

// ExecutorFactoryStub hands out a fixed executor, for tests that do not care
// about the database (pair it with a pgxmock pool or a nil executor).
type ExecutorFactoryStub struct {
	Executor repositories.Executor
}

func NewExecutorFactoryStub(exec repositories.Executor) ExecutorFactoryStub {
	return ExecutorFactoryStub{Executor: exec}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Executor
}

func (stub ExecutorFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return fn(stub.Executor)
}
