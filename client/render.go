package client

import (
	"fmt"
	"io"
	"time"

	"go-expense-tracker/model"
	"go-expense-tracker/summary"
)

// Render writes the terminal rendition of the tracker page: balance, income
// and expense cards, the weekly and monthly expense pills, then the history
// list exactly as fetched (newest date first).
func Render(w io.Writer, transactions []model.Transaction, now time.Time, f *summary.Formatter) {
	totals := summary.Compute(transactions)
	period := summary.ComputePeriod(transactions, now)

	fmt.Fprintln(w, "Personal Expenses")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Balance:    %s\n", f.FormatSigned(totals.Balance))
	fmt.Fprintf(w, "  Income:    +%s\n", f.Format(totals.Income))
	fmt.Fprintf(w, "  Expenses:  -%s\n", f.Format(totals.Expense))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  This week:  %s   This month: %s\n", f.Format(period.WeeklyExpenses), f.Format(period.MonthlyExpenses))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "History")

	if len(transactions) == 0 {
		fmt.Fprintln(w, "  No movements recorded.")
		return
	}

	for _, t := range transactions {
		fmt.Fprintf(w, "  %6d  %s  %-30s  %s\n", t.ID, t.Date.String(), t.Description, f.Signed(t))
	}
}
