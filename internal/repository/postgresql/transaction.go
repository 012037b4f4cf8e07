package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// WithTransaction executes fn inside a database transaction. Repositories
// called with the context passed to fn join the transaction.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback during panic recovery failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx), tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// conditions accumulates WHERE clauses with positional arguments.
type conditions struct {
	clauses []string
	args    []interface{}
}

// bind registers arg and returns its placeholder.
func (c *conditions) bind(arg interface{}) string {
	c.args = append(c.args, arg)
	return fmt.Sprintf("$%d", len(c.args))
}

// add appends clause, replacing each ? with the next argument's placeholder.
func (c *conditions) add(clause string, args ...interface{}) {
	for _, arg := range args {
		clause = strings.Replace(clause, "?", c.bind(arg), 1)
	}
	c.clauses = append(c.clauses, clause)
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// rangeClause builds inclusive bounds on column. Bounds arrive validated as
// YYYY-MM-DD strings; an empty bound is open.
func (c *conditions) rangeClause(column, start, end string) string {
	parts := make([]string, 0, 2)
	if start != "" {
		parts = append(parts, column+" >= "+c.bind(start)+"::date")
	}
	if end != "" {
		parts = append(parts, column+" <= "+c.bind(end)+"::date")
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

func (c *conditions) dateRange(column, start, end string) {
	if start == "" && end == "" {
		return
	}
	c.clauses = append(c.clauses, c.rangeClause(column, start, end))
}

func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// validID reports whether id can be compared against a UUID column. Other
// strings would fail with invalid_text_representation instead of matching
// nothing.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
