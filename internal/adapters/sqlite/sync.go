package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"resprune/internal/domain"
)

// Refresh applies change records in order inside a single transaction.
// Any failure rolls the whole batch back.
func (idx *Index) Refresh(ctx context.Context, changes []domain.ChangeRecord) (stats *domain.RefreshStats, err error) {
	start := time.Now()
	stats = &domain.RefreshStats{}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to open writer session: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, change := range changes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if change.Kind == domain.ChangeDeleted {
			if err := tx.Delete(change.Path); err != nil {
				return nil, fmt.Errorf("failed to delete %s: %w", change.Path, err)
			}
			stats.Deleted++
			continue
		}

		tokens, err := tokenizeFile(change.Path)
		if errors.Is(err, fs.ErrNotExist) {
			if err := tx.Delete(change.Path); err != nil {
				return nil, err
			}
			stats.Missing++
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := tx.Upsert(change.Path, tokens); err != nil {
			return nil, err
		}
		if change.Kind == domain.ChangeNew {
			stats.Added++
		} else {
			stats.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit index: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// tokenizeFile reads a source file and returns its token set
func tokenizeFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return domain.Tokenize(string(content)), nil
}
