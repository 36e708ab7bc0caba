// Package txmanager управляет транзакциями в стиле unit of work:
// транзакция открывается явно, репозитории работают через uow.Context(),
// а вызывающий код сам решает, когда вызвать Commit или Rollback.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

// serializationFailure SQLSTATE 40001
const serializationFailure = "40001"

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrTxFinished возвращается при повторном Commit
	ErrTxFinished = errors.New("txmanager: transaction already finished")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// UnitOfWork открытая транзакция
type UnitOfWork interface {
	// Context возвращает контекст, через который репозитории видят транзакцию
	Context() context.Context
	Commit() error
	// Rollback откатывает транзакцию. После Commit ничего не делает
	Rollback() error
}

// Manager открывает единицы работы
type Manager struct {
	db TxBeginner
}

// NewManager создает менеджер транзакций
func NewManager(db TxBeginner) *Manager {
	return &Manager{db: db}
}

// Begin открывает транзакцию с переданными опциями
func (m *Manager) Begin(ctx context.Context, opts *sql.TxOptions) (UnitOfWork, error) {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginTx, err)
	}
	return &unitOfWork{ctx: dbmetrics.WithTx(ctx, tx), tx: tx}, nil
}

// BeginSerializable открывает транзакцию с уровнем изоляции SERIALIZABLE
func (m *Manager) BeginSerializable(ctx context.Context) (UnitOfWork, error) {
	return m.Begin(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

type unitOfWork struct {
	ctx context.Context
	tx  dbmetrics.TxExecutor

	mu       sync.Mutex
	finished bool
}

func (u *unitOfWork) Context() context.Context {
	return u.ctx
}

func (u *unitOfWork) Commit() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.finished {
		return ErrTxFinished
	}
	u.finished = true

	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}
	return nil
}

func (u *unitOfWork) Rollback() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.finished {
		return nil
	}
	u.finished = true

	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// IsSerializationFailure проверяет, что ошибка вызвана конфликтом сериализации PostgreSQL
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure
	}
	return false
}
