package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction; repositories
// obtained without an active transaction run each statement on its own.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then dispatches the domain events
	// of every aggregate the repositories touched.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and any recorded events.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	ProductRepository() ProductRepository
	OrderRepository() OrderRepository
}
