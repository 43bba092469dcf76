package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"go-expense-tracker/model"
)

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter(language.English, "$")

	assert.Equal(t, "$ 1,500,000", f.Format(1500000))
	assert.Equal(t, "$ 0", f.Format(0))

	t.Run("magnitude only, sign stripped", func(t *testing.T) {
		assert.Equal(t, f.Format(250), f.Format(-250))
	})
}

func TestFormatterFormatSigned(t *testing.T) {
	f := NewFormatter(language.English, "$")

	assert.Equal(t, "$ 350", f.FormatSigned(350))
	assert.Equal(t, "-$ 350", f.FormatSigned(-350))
}

func TestFormatterSigned(t *testing.T) {
	f := NewFormatter(language.English, "$")

	income := model.Transaction{Type: model.TypeIncome, Amount: 500}
	expense := model.Transaction{Type: model.TypeExpense, Amount: 100}

	assert.Equal(t, "+$ 500", f.Signed(income))
	assert.Equal(t, "-$ 100", f.Signed(expense))

	t.Run("sign comes from the type, not the stored value", func(t *testing.T) {
		negativeIncome := model.Transaction{Type: model.TypeIncome, Amount: -500}
		assert.Equal(t, "+$ 500", f.Signed(negativeIncome))
	})
}

func TestDefaultFormatter(t *testing.T) {
	f := DefaultFormatter()

	out := f.Signed(model.Transaction{Type: model.TypeExpense, Amount: 1000})
	assert.True(t, strings.HasPrefix(out, "-$ "), "got %q", out)

	out = f.Signed(model.Transaction{Type: model.TypeIncome, Amount: 1000})
	assert.True(t, strings.HasPrefix(out, "+$ "), "got %q", out)
}
