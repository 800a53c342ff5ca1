package commands

import (
	"context"

	"resprune/internal/application"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

// QueryResult tells whether a term is referenced and where
type QueryResult struct {
	Term       string
	Tokens     []string
	Referenced bool
	Sources    []string
}

// QueryCommand looks a term up in the reference index
type QueryCommand struct {
	index ports.ReferenceIndex
	Term  string
}

// NewQueryCommand creates a new QueryCommand. The index must be open.
func NewQueryCommand(index ports.ReferenceIndex, term string) *QueryCommand {
	return &QueryCommand{index: index, Term: term}
}

// Validate checks that the term parses
func (c *QueryCommand) Validate() error {
	if err := application.ValidateRequired("term", c.Term); err != nil {
		return err
	}
	_, err := domain.ParseQuery(c.Term)
	return err
}

// Execute runs the query
func (c *QueryCommand) Execute(ctx context.Context) (*QueryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	q, _ := domain.ParseQuery(c.Term)

	sources, err := c.index.Sources(c.Term)
	if err != nil {
		return nil, err
	}
	return &QueryResult{
		Term:       c.Term,
		Tokens:     q.Tokens,
		Referenced: len(sources) > 0,
		Sources:    sources,
	}, nil
}
