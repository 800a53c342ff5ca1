package sqlite

import (
	"strings"

	"resprune/internal/domain"
)

// Contains reports whether any document outside exclude holds every token of term
func (idx *Index) Contains(term string, exclude ...string) (bool, error) {
	q, err := domain.ParseQuery(term)
	if err != nil {
		return false, err
	}

	query, args := matchQuery(q, exclude)
	rows, err := idx.db.Query(query+` LIMIT 1`, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}

// Sources returns the paths of every document holding all tokens of term
func (idx *Index) Sources(term string) ([]string, error) {
	q, err := domain.ParseQuery(term)
	if err != nil {
		return nil, err
	}

	query, args := matchQuery(q, nil)
	rows, err := idx.db.Query(query+` ORDER BY d.path`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

// matchQuery builds the conjunctive token lookup. Token rows are unique per
// document, so a document matches when it yields one row per query token.
func matchQuery(q domain.Query, exclude []string) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.Tokens)+len(exclude)+1)

	b.WriteString(`SELECT d.path FROM documents d JOIN tokens t ON t.doc_id = d.id WHERE t.token IN (`)
	b.WriteString(placeholders(len(q.Tokens)))
	b.WriteString(`)`)
	for _, token := range q.Tokens {
		args = append(args, token)
	}

	if len(exclude) > 0 {
		b.WriteString(` AND d.path NOT IN (`)
		b.WriteString(placeholders(len(exclude)))
		b.WriteString(`)`)
		for _, path := range exclude {
			args = append(args, path)
		}
	}

	b.WriteString(` GROUP BY d.id, d.path HAVING COUNT(*) = ?`)
	args = append(args, len(q.Tokens))
	return b.String(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
