package database

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/superhawk610/sqlit/pkg/parser/parser"
	"github.com/superhawk610/sqlit/pkg/parser/statements"

	"golang.org/x/sync/errgroup"
)

// ExecuteScript runs every statement of a script in order. All statements are
// parsed up front, concurrently, and nothing executes if any of them fails to
// parse. Execution stops at the first failing statement or when ctx is done;
// the results of the statements that ran are returned either way.
func (db *Database) ExecuteScript(ctx context.Context, script string) ([]QueryResult, error) {
	sources := SplitStatements(script)
	if len(sources) == 0 {
		return nil, nil
	}

	parsed := make([]statements.Statement, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stmt, err := parser.ParseStatement(src)
			if err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
			parsed[i] = stmt
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		db.recordError()
		db.log.Warn("script rejected", "statements", len(sources), "error", err)
		return nil, err
	}

	results := make([]QueryResult, 0, len(parsed))
	for i, stmt := range parsed {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := db.Execute(stmt)
		if err != nil {
			return results, fmt.Errorf("statement %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	db.log.Info("script executed", "statements", len(results))
	return results, nil
}

// SplitStatements breaks a script into statements on semicolons that are
// not inside single-quoted text. Line comments starting with "--" are
// dropped, as are statements that are empty after trimming.
func SplitStatements(script string) []string {
	var (
		out     []string
		current strings.Builder
		inText  bool
	)

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			out = append(out, s)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		ch := script[i]
		switch {
		case ch == '\'':
			inText = !inText
			current.WriteByte(ch)
		case inText:
			current.WriteByte(ch)
		case ch == ';':
			flush()
		case ch == '-' && i+1 < len(script) && script[i+1] == '-':
			for i < len(script) && script[i] != '\n' {
				i++
			}
			current.WriteByte('\n')
		default:
			current.WriteByte(ch)
		}
	}
	flush()
	return out
}
