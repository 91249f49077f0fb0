package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/summary"
)

// Header is the CSV header for exported statements.
const Header = "index,date,type,amount"

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colIndex   = 0
	colDate    = 1
	colType    = 2
	colAmount  = 3
)

// Movement types.
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// Row is one displayed movement.
type Row struct {
	Index  int
	Date   time.Time // zero in sorted view
	Type   string
	Amount decimal.Decimal
}

// Rows builds display rows for acct in history order. When sorted is set
// the rows follow summary.SortedMovements and carry no dates.
func Rows(acct *model.Account, sorted bool) []Row {
	if sorted {
		movs := summary.SortedMovements(acct, true)
		rows := make([]Row, len(movs))
		for i, m := range movs {
			rows[i] = Row{Index: i, Type: typeOf(m), Amount: m}
		}
		return rows
	}

	rows := make([]Row, len(acct.Movements))
	for i, m := range acct.Movements {
		rows[i] = Row{Index: i, Date: acct.MovementDates[i], Type: typeOf(m), Amount: m}
	}
	return rows
}

func typeOf(m decimal.Decimal) string {
	if m.IsPositive() {
		return TypeDeposit
	}
	return TypeWithdrawal
}

// Render writes rows newest first, one per line.
func Render(w io.Writer, rows []Row, currency string) error {
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format(dateFormat)
		}
		if _, err := fmt.Fprintf(w, "%3d %-10s %-10s %12s %s\n", r.Index, r.Type, date, r.Amount.StringFixed(2), currency); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Index, err)
		}
	}
	return nil
}

// Write writes rows as CSV (including header).
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rows {
		if err := cw.Write(MarshalRow(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(r Row) []string {
	rec := make([]string, numFields)
	rec[colIndex] = strconv.Itoa(r.Index)
	if !r.Date.IsZero() {
		rec[colDate] = r.Date.Format(dateFormat)
	}
	rec[colType] = r.Type
	rec[colAmount] = r.Amount.StringFixed(2)
	return rec
}
