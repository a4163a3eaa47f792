package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

type historyRow struct {
	date        time.Time
	kind        string
	description string
	amount      string
	category    string
}

// WriteHistory writes the transaction history (payments plus paid expenses)
// as CSV with columns Date, Type, Description, Amount, Category, oldest first.
func WriteHistory(w io.Writer, state models.AppState) error {
	rows := make([]historyRow, 0, len(state.PaymentLogs)+len(state.Expenses))
	for _, p := range state.PaymentLogs {
		rows = append(rows, historyRow{
			date:        p.Date,
			kind:        "Payment",
			description: fmt.Sprintf("%s payment to %s", p.Kind, p.AccountName),
			amount:      p.Amount.StringFixed(2),
			category:    "debt_payment",
		})
	}
	for _, e := range state.Expenses {
		if !e.IsPaid {
			continue
		}
		rows = append(rows, historyRow{
			date:        e.Date,
			kind:        "Expense",
			description: e.Name,
			amount:      e.Amount.StringFixed(2),
			category:    string(e.Category),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Type", "Description", "Amount", "Category"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.date.Format(dateLayout), r.kind, r.description, r.amount, r.category}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
