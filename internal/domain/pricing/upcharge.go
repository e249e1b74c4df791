package pricing

import (
	"github.com/shopspring/decimal"
)

// Dimensions of a piece of furniture, in millimetres.
type Dimensions struct {
	Width  int `json:"width"`
	Depth  int `json:"depth"`
	Height int `json:"height"`
}

// UpchargeRule prices a custom size: Initial percent once a dimension grows,
// plus Increment percent for every Step millimetres beyond Boundary.
type UpchargeRule struct {
	Boundary  int
	Initial   int
	Increment int
	Step      int
}

// Upcharge rules by product collection. Collections not listed are never
// upcharged.
var collectionRules = map[string]UpchargeRule{
	"Dellarobbia Thailand": {Boundary: 150, Initial: 10, Increment: 1, Step: 50},
	"Dwell Living":         {Boundary: 150, Initial: 10, Increment: 1, Step: 50},
}

// RuleForCollection returns the upcharge rule of a collection.
func RuleForCollection(collection string) (UpchargeRule, bool) {
	rule, ok := collectionRules[collection]
	return rule, ok
}

// UpchargePercentage returns the whole-number upcharge for one dimension
// grown by difference millimetres. Shrinking a dimension is free.
func UpchargePercentage(rule UpchargeRule, difference int) int {
	if difference <= 0 {
		return 0
	}

	steps := 0
	if over := difference - rule.Boundary; over > 0 && rule.Step > 0 {
		steps = (over + rule.Step - 1) / rule.Step
	}
	return rule.Initial + steps*rule.Increment
}

// CustomSizeUpcharge sums the upcharge of every grown dimension.
func CustomSizeUpcharge(collection string, standard, custom Dimensions) int {
	rule, ok := RuleForCollection(collection)
	if !ok {
		return 0
	}

	return UpchargePercentage(rule, custom.Width-standard.Width) +
		UpchargePercentage(rule, custom.Depth-standard.Depth) +
		UpchargePercentage(rule, custom.Height-standard.Height)
}

// ApplyUpcharge returns unitPrice increased by pct percent.
func ApplyUpcharge(unitPrice decimal.Decimal, pct int) decimal.Decimal {
	if pct == 0 {
		return unitPrice
	}
	return unitPrice.Add(percentOf(unitPrice, pct))
}

// ItemPrice resolves the unit price of an acknowledgement item. A positive
// custom price wins; otherwise the product price is upcharged for any
// custom dimensions.
func ItemPrice(productPrice decimal.Decimal, customPrice *decimal.Decimal, collection string, standard, custom Dimensions, customSize bool) decimal.Decimal {
	if customPrice != nil && customPrice.IsPositive() {
		return *customPrice
	}
	if !customSize {
		return productPrice
	}
	return ApplyUpcharge(productPrice, CustomSizeUpcharge(collection, standard, custom))
}
