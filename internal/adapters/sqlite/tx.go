package sqlite

import (
	"database/sql"
	"fmt"

	"resprune/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx          *sql.Tx
	insertToken *sql.Stmt
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// Upsert stores the token set of path, replacing any previous content in place
func (t *indexTx) Upsert(path string, tokens []string) error {
	id := documentID(path)

	if _, err := t.tx.Exec(`
		INSERT INTO documents (id, path) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET path = excluded.path
	`, id, path); err != nil {
		return fmt.Errorf("upsert %s: %w", path, err)
	}
	if _, err := t.tx.Exec(`DELETE FROM tokens WHERE doc_id = ?`, id); err != nil {
		return fmt.Errorf("clear tokens of %s: %w", path, err)
	}

	if t.insertToken == nil {
		stmt, err := t.tx.Prepare(`INSERT OR IGNORE INTO tokens (doc_id, token) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		t.insertToken = stmt
	}
	for _, token := range tokens {
		if _, err := t.insertToken.Exec(id, token); err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}
	}
	return nil
}

// Delete removes the document keyed by path
func (t *indexTx) Delete(path string) error {
	id := documentID(path)
	if _, err := t.tx.Exec(`DELETE FROM tokens WHERE doc_id = ?`, id); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM documents WHERE id = ?`, id)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	t.closeStmt()
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	t.closeStmt()
	return t.tx.Rollback()
}

func (t *indexTx) closeStmt() {
	if t.insertToken != nil {
		t.insertToken.Close()
		t.insertToken = nil
	}
}
