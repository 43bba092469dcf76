// Package summary derives the figures the tracker displays from a flat
// transaction list: running totals and expense sums scoped to the current
// calendar week and month.
package summary

import (
	"time"

	"go-expense-tracker/model"
)

// Totals are the running figures over the whole transaction list.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// PeriodTotals are expense sums scoped to the calendar week and month
// containing a reference instant. The two filters are independent: one
// transaction can count in both.
type PeriodTotals struct {
	WeeklyExpenses  float64
	MonthlyExpenses float64
}

// Compute sums incomes and expenses over the whole list. The empty list
// yields all zeroes. Transactions of an unknown type contribute to neither
// side.
func Compute(transactions []model.Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Type {
		case model.TypeIncome:
			t.Income += float64(tx.Amount)
		case model.TypeExpense:
			t.Expense += float64(tx.Amount)
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// ComputePeriod sums expense-typed transactions falling in the same
// Monday-start week and the same calendar month as now.
func ComputePeriod(transactions []model.Transaction, now time.Time) PeriodTotals {
	var p PeriodTotals
	for _, tx := range transactions {
		if tx.Type != model.TypeExpense {
			continue
		}
		if SameWeek(tx.Date.Time, now) {
			p.WeeklyExpenses += float64(tx.Amount)
		}
		if SameMonth(tx.Date.Time, now) {
			p.MonthlyExpenses += float64(tx.Amount)
		}
	}
	return p
}

// SameWeek reports whether a and b fall in the same Monday-start calendar
// week. Sunday belongs to the week opened by the previous Monday.
func SameWeek(a, b time.Time) bool {
	return startOfWeek(a).Equal(startOfWeek(b))
}

// SameMonth reports whether a and b fall in the same calendar month of the
// same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// startOfWeek truncates t to its date and steps back to the Monday that
// opened the week.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return day.AddDate(0, 0, -offset)
}
