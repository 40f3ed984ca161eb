package shopping

import (
	"bytes"
	"time"

	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used for sorting when no locale is configured.
var DefaultLocale = language.French

// ShoppingList is the generated list for one family and week.
type ShoppingList struct {
	FamilyID             uuid.UUID       `json:"familyId"`
	Week                 types.Week      `json:"week"`
	CreatedAt            time.Time       `json:"createdAt"`
	Items                []Line          `json:"items"`
	TotalTheoreticalCost decimal.Decimal `json:"totalTheoreticalCost"`
	TotalActualCost      decimal.Decimal `json:"totalActualCost"`
}

// Assemble builds the shopping list from priced lines.
//
// Lines with nothing to buy are dropped. The remaining lines are sorted by
// category, then name, using the collation rules of the locale.
//
// The theoretical total covers all lines, including the dropped ones, while
// the actual total only covers the lines that remain on the list.
func Assemble(lines []Line, locale language.Tag) ShoppingList {
	list := ShoppingList{
		Items:                make([]Line, 0, len(lines)),
		TotalTheoreticalCost: decimal.Zero,
		TotalActualCost:      decimal.Zero,
	}

	for _, line := range lines {
		list.TotalTheoreticalCost = list.TotalTheoreticalCost.Add(line.TheoreticalCost)

		if !line.NetQuantity.IsPositive() {
			continue
		}

		line.IsChecked = false
		list.TotalActualCost = list.TotalActualCost.Add(line.ActualCost)
		list.Items = append(list.Items, line)
	}

	SortLines(list.Items, locale)
	return list
}

// SortLines sorts lines by category, then name, then ingredient ID.
func SortLines(lines []Line, locale language.Tag) {
	if locale == language.Und {
		locale = DefaultLocale
	}

	// A collator is not safe for concurrent use
	c := collate.New(locale)

	slices.SortFunc(lines, func(a, b Line) int {
		if n := c.CompareString(a.Category, b.Category); n != 0 {
			return n
		}

		if n := c.CompareString(a.Name, b.Name); n != 0 {
			return n
		}

		return bytes.Compare(a.IngredientID[:], b.IngredientID[:])
	})
}
