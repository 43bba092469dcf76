package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	t.Run("accepts a number", func(t *testing.T) {
		var a Amount
		assert.NoError(t, json.Unmarshal([]byte(`1500.5`), &a))
		assert.Equal(t, Amount(1500.5), a)
	})

	t.Run("accepts a numeric string, as form clients submit", func(t *testing.T) {
		var a Amount
		assert.NoError(t, json.Unmarshal([]byte(`"1500"`), &a))
		assert.Equal(t, Amount(1500), a)
	})

	t.Run("rejects a non-numeric string at the boundary", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`"lots"`), &a))
	})

	t.Run("empty string decodes to zero so presence checks catch it", func(t *testing.T) {
		var a Amount
		assert.NoError(t, json.Unmarshal([]byte(`""`), &a))
		assert.Equal(t, Amount(0), a)
	})
}

func TestAmountMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Amount(1500))
	assert.NoError(t, err)
	assert.Equal(t, "1500", string(out), "amounts serialize as numbers, not strings")
}

func TestDateJSON(t *testing.T) {
	t.Run("round trips an ISO date", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
		assert.Equal(t, NewDate(2024, time.January, 15), d)

		out, err := json.Marshal(d)
		assert.NoError(t, err)
		assert.Equal(t, `"2024-01-15"`, string(out))
	})

	t.Run("truncates a full timestamp to its day", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`"2024-01-15T18:30:00Z"`), &d))
		assert.Equal(t, NewDate(2024, time.January, 15), d)
	})

	t.Run("empty string is the zero date, not a decode error", func(t *testing.T) {
		var d Date
		assert.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"someday"`), &d))
	})
}

func TestDateScan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan(time.Date(2024, time.March, 3, 14, 0, 0, 0, time.Local)))
		assert.Equal(t, NewDate(2024, time.March, 3), d)
	})

	t.Run("from text", func(t *testing.T) {
		var d Date
		assert.NoError(t, d.Scan([]byte("2024-03-03")))
		assert.Equal(t, NewDate(2024, time.March, 3), d)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestCreateTransactionRequestMissing(t *testing.T) {
	amount := Amount(100)
	date := NewDate(2024, time.January, 1)
	valid := CreateTransactionRequest{
		Type:        TypeExpense,
		Amount:      &amount,
		Description: "groceries",
		Date:        &date,
	}
	assert.False(t, valid.Missing())

	zeroAmount := Amount(0)
	zeroDate := Date{}
	for name, req := range map[string]CreateTransactionRequest{
		"no type":        {Amount: &amount, Description: "x", Date: &date},
		"nil amount":     {Type: TypeExpense, Description: "x", Date: &date},
		"zero amount":    {Type: TypeExpense, Amount: &zeroAmount, Description: "x", Date: &date},
		"no description": {Type: TypeExpense, Amount: &amount, Date: &date},
		"nil date":       {Type: TypeExpense, Amount: &amount, Description: "x"},
		"zero date":      {Type: TypeExpense, Amount: &amount, Description: "x", Date: &zeroDate},
	} {
		assert.True(t, req.Missing(), name)
	}
}
