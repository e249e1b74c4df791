package accounting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

func posting(t *testing.T, terms pricing.Terms, prices ...string) InvoicePosting {
	t.Helper()
	var items []pricing.LineItem
	var posted []PostedItem
	for _, p := range prices {
		li := pricing.NewLineItem(decimal.RequireFromString(p), 1)
		items = append(items, li)
		posted = append(posted, PostedItem{Description: "Sofa " + p, Total: li.Total})
	}
	totals, err := pricing.Calculate(items, terms)
	require.NoError(t, err)

	return InvoicePosting{
		DocumentNumber: "IV-200001",
		CustomerName:   "Hotel Siam",
		Totals:         totals,
		Items:          posted,
	}
}

func TestBuildInvoiceJournalEntry(t *testing.T) {
	entry, err := BuildInvoiceJournalEntry(posting(t, pricing.Terms{Discount: 10, SecondDiscount: 5, VAT: 7}, "600", "400"))
	require.NoError(t, err)

	assert.Equal(t, JournalRevenue, entry.Journal)
	assert.Equal(t, "Invoice IV-200001", entry.Description)
	require.Len(t, entry.Lines, 5)

	assert.Equal(t, AccountReceivable, entry.Lines[0].Account)
	assert.Equal(t, "914.85", entry.Lines[0].Debit.StringFixed(2))
	assert.Nil(t, entry.Lines[0].Credit)

	assert.Equal(t, AccountVATPayable, entry.Lines[1].Account)
	assert.Equal(t, "59.85", entry.Lines[1].Credit.StringFixed(2))

	assert.Equal(t, AccountSalesDiscount, entry.Lines[2].Account)
	assert.Equal(t, "145.00", entry.Lines[2].Debit.StringFixed(2))

	assert.Equal(t, AccountProductIncome, entry.Lines[3].Account)
	assert.Equal(t, "Invoice IV-200001: Sofa 600", entry.Lines[3].Description)

	assert.True(t, entry.Debits().Equal(entry.Credits()))
	assert.Equal(t, "1059.85", entry.Credits().StringFixed(2))
}

func TestBuildInvoiceJournalEntryWithoutVATOrDiscount(t *testing.T) {
	entry, err := BuildInvoiceJournalEntry(posting(t, pricing.Terms{}, "250"))
	require.NoError(t, err)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, AccountReceivable, entry.Lines[0].Account)
	assert.Equal(t, AccountProductIncome, entry.Lines[1].Account)
}

func TestBuildInvoiceJournalEntryRejectsMismatchedItems(t *testing.T) {
	in := posting(t, pricing.Terms{VAT: 7}, "100")
	in.Items = append(in.Items, PostedItem{Description: "stray", Total: decimal.NewFromInt(5)})

	_, err := BuildInvoiceJournalEntry(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnbalancedEntry))
}
