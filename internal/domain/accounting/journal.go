// Package accounting turns billed documents into double-entry journal
// entries.
package accounting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// Chart of accounts used for sales postings.
const (
	JournalRevenue = "Revenue"

	AccountReceivable    = "Accounts Receivable (A/R)"
	AccountVATPayable    = "VAT Payable"
	AccountSalesDiscount = "Sales Discounts"
	AccountProductIncome = "Sales of Product Income"
)

// ErrUnbalancedEntry means the debits of an entry do not equal its credits.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// Line is one debit or credit of a journal entry. Exactly one side is set.
type Line struct {
	Account     string           `json:"account"`
	Debit       *decimal.Decimal `json:"debit"`
	Credit      *decimal.Decimal `json:"credit"`
	Description string           `json:"description"`
}

// JournalEntry is a balanced set of lines posted to a journal.
type JournalEntry struct {
	Journal     string `json:"journal"`
	Description string `json:"description"`
	Lines       []Line `json:"lines"`
}

// PostedItem is a billed item as it appears on the income side.
type PostedItem struct {
	Description string
	Total       decimal.Decimal
}

// InvoicePosting is everything needed to post an invoice.
type InvoicePosting struct {
	DocumentNumber string
	CustomerName   string
	Totals         pricing.Totals
	Items          []PostedItem
}

// Debits sums the debit side.
func (e JournalEntry) Debits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		if l.Debit != nil {
			sum = sum.Add(*l.Debit)
		}
	}
	return sum
}

// Credits sums the credit side.
func (e JournalEntry) Credits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		if l.Credit != nil {
			sum = sum.Add(*l.Credit)
		}
	}
	return sum
}

// Validate checks the entry balances.
func (e JournalEntry) Validate() error {
	debits, credits := e.Debits(), e.Credits()
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedEntry, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

// BuildInvoiceJournalEntry posts an invoice to the Revenue journal:
// receivable for the grand total, VAT payable, the discounts given, and
// product income per billed item.
func BuildInvoiceJournalEntry(in InvoicePosting) (JournalEntry, error) {
	label := fmt.Sprintf("Invoice %s: %s", in.DocumentNumber, in.CustomerName)
	entry := JournalEntry{
		Journal:     JournalRevenue,
		Description: fmt.Sprintf("Invoice %s", in.DocumentNumber),
	}

	entry.Lines = append(entry.Lines, debit(AccountReceivable, in.Totals.GrandTotal, label))

	if in.Totals.VATAmount.IsPositive() {
		entry.Lines = append(entry.Lines, credit(AccountVATPayable, in.Totals.VATAmount, label))
	}

	discounts := in.Totals.DiscountAmount.Add(in.Totals.SecondDiscountAmount)
	if discounts.IsPositive() {
		entry.Lines = append(entry.Lines, debit(AccountSalesDiscount, discounts, label))
	}

	for _, item := range in.Items {
		desc := fmt.Sprintf("Invoice %s: %s", in.DocumentNumber, item.Description)
		entry.Lines = append(entry.Lines, credit(AccountProductIncome, item.Total, desc))
	}

	if err := entry.Validate(); err != nil {
		return JournalEntry{}, err
	}
	return entry, nil
}

func debit(account string, amount decimal.Decimal, desc string) Line {
	return Line{Account: account, Debit: &amount, Description: desc}
}

func credit(account string, amount decimal.Decimal, desc string) Line {
	return Line{Account: account, Credit: &amount, Description: desc}
}
