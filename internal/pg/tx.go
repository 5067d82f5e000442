package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrLockTimeout is returned when the row lock was not granted within the
// transaction's lock_timeout. Callers may retry the whole operation.
var ErrLockTimeout = errors.New("lock acquisition timed out")

const lockTimeout = "3s"

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

// TXManager runs a function inside a single database transaction. The open
// transaction travels through the context, so every repository call made by
// fn joins it.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

type Manager struct {
	pool Pool
}

func NewTXManager(pool Pool) *Manager {
	return &Manager{pool: pool}
}

func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// Already inside a transaction, join it.
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("transaction rollback failed", zap.Error(rbErr))
		}
		return mapLockError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapLockError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// mapLockError converts SQLSTATE 55P03 (lock_not_available) into
// ErrLockTimeout so services can branch on the sentinel.
func mapLockError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
		return fmt.Errorf("%w: %v", ErrLockTimeout, err)
	}
	return err
}
