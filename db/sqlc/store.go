package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type Store struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:      db,
		Queries: New(db),
	}
}

var (
	connOnce sync.Once
	conn     *sql.DB
	connErr  error
)

// Open returns the process-wide database handle, establishing it on first
// use. Concurrent first calls coalesce into a single connect attempt.
func Open(driver, source string) (*sql.DB, error) {
	connOnce.Do(func() {
		conn, connErr = sql.Open(driver, source)
		if connErr != nil {
			return
		}
		connErr = conn.Ping()
	})
	return conn, connErr
}

func (s *Store) ExecTx(ctx context.Context, fq func(q *Queries) error) error {
	return s.execTx(ctx, nil, fq)
}

// ExecSerializableTx runs fq inside a serializable transaction. Both money
// flows (booking debit, webhook credit) go through this.
func (s *Store) ExecSerializableTx(ctx context.Context, fq func(q *Queries) error) error {
	return s.execTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fq)
}

func (s *Store) execTx(ctx context.Context, opts *sql.TxOptions, fq func(q *Queries) error) error {
	// initialize transaction
	tx, err := s.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fq(q)

	if err != nil {
		if txErr := tx.Rollback(); txErr != nil && txErr != sql.ErrTxDone {
			return fmt.Errorf("encountered rollback error: %v", txErr)
		}
		return err
	}

	return tx.Commit()
}
