package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetOption is a selectable budget range. Min and Max are parsed from
// tokens like "50000-200000" or "1000000+"; other tokens leave them null.
type BudgetOption struct {
	Value string
	Label string
	Min   decimal.NullDecimal
	Max   decimal.NullDecimal
}

// ParseBudgetOption builds an option from its token and label.
func ParseBudgetOption(value, label string) BudgetOption {
	opt := BudgetOption{Value: value, Label: label}

	if lower, ok := strings.CutSuffix(value, "+"); ok {
		if d, err := decimal.NewFromString(lower); err == nil {
			opt.Min = decimal.NewNullDecimal(d)
		}
		return opt
	}

	lower, upper, ok := strings.Cut(value, "-")
	if !ok {
		return opt
	}
	minD, errMin := decimal.NewFromString(lower)
	maxD, errMax := decimal.NewFromString(upper)
	if errMin != nil || errMax != nil || minD.GreaterThan(maxD) {
		return opt
	}
	opt.Min = decimal.NewNullDecimal(minD)
	opt.Max = decimal.NewNullDecimal(maxD)
	return opt
}

// IsRange reports whether the option carries numeric bounds.
func (o BudgetOption) IsRange() bool {
	return o.Min.Valid
}
