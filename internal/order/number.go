package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// nextNumber produces the next date-scoped order number: YYYYMMDD-NNNN for
// sales, PO-YYYYMMDD-NNNN for purchases. The suffix continues from the
// greatest number sharing today's prefix, starting at 0001. It must run inside
// the same transaction that inserts the header so a concurrent creation cannot
// be handed the same number; the UNIQUE index on invoice_number backstops it.
func nextNumber(ctx context.Context, tx *sqlx.Tx, k orderKind, datePart string) (string, error) {
	prefix := k.numberPrefix + datePart

	var last string
	query := fmt.Sprintf(`SELECT invoice_number FROM %s WHERE invoice_number LIKE ? ORDER BY invoice_number DESC LIMIT 1`, k.table)
	err := tx.GetContext(ctx, &last, query, prefix+"-%")
	if errors.Is(err, sql.ErrNoRows) {
		return prefix + "-0001", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last %s number: %w", k.name, err)
	}

	suffix, err := strconv.Atoi(last[len(prefix)+1:])
	if err != nil {
		suffix = 0
	}
	return fmt.Sprintf("%s-%04d", prefix, suffix+1), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
