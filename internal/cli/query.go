package cli

import (
	"context"

	"github.com/studiowebux/flashcli/internal/query"
)

// Query evaluates a JMESPath filter and query against the state and prints the result
func (a *App) Query(ctx context.Context, filter, expression string, color bool) error {
	result, err := query.State(ctx, a.Store.State(), filter, expression)
	if err != nil {
		return err
	}
	return query.Write(a.Out, result, color)
}
