package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// stateTx is a write transaction on one scope
type stateTx struct {
	tx    *sql.Tx
	scope string
}

func (st *State) begin(ctx context.Context) (*stateTx, error) {
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &stateTx{tx: tx, scope: st.scope}, nil
}

// Put inserts or replaces a value
func (t *stateTx) Put(key string, value []byte) error {
	_, err := t.tx.Exec(`
		INSERT INTO state (scope, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (scope, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, t.scope, key, value)
	return err
}

// Commit commits the transaction
func (t *stateTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *stateTx) Rollback() error {
	return t.tx.Rollback()
}
