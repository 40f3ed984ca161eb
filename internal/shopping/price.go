package shopping

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places costs are rounded to.
const CurrencyPlaces = 2

// Price fills the price and cost fields of a line.
//
// When no price per standard unit can be determined, the line is flagged
// with NeedsPriceInput and both costs are zero. Costs are rounded half up
// to CurrencyPlaces. This is the only place the pipeline rounds.
func Price(line Line, ingredients IngredientCatalog) (Line, *Diagnostic) {
	line.PricePerUnit = decimal.NullDecimal{}
	line.TheoreticalCost = decimal.Zero
	line.ActualCost = decimal.Zero
	line.NeedsPriceInput = false

	price, ok := pricePerUnit(line, ingredients)
	if !ok {
		line.NeedsPriceInput = true
		return line, &Diagnostic{
			Kind:         KindMissingPrice,
			IngredientID: ref(line.IngredientID),
			Unit:         line.Unit,
			Message:      fmt.Sprintf("%s: no price is known for the unit %q", line.Name, line.Unit),
		}
	}

	line.PricePerUnit = decimal.NewNullDecimal(price)
	line.TheoreticalCost = roundCurrency(line.GrossQuantity.Mul(price))
	line.ActualCost = roundCurrency(line.NetQuantity.Mul(price))
	return line, nil
}

func pricePerUnit(line Line, ingredients IngredientCatalog) (decimal.Decimal, bool) {
	ingredient, ok := ingredients.Ingredient(line.IngredientID)
	if !ok {
		return decimal.Zero, false
	}

	// The price is per standard unit, the line must use the same unit
	standard, ok := ingredient.Units.Standard()
	if !ok || standard != line.Unit {
		return decimal.Zero, false
	}

	return ingredient.Units.PricePerStandardUnit()
}

// roundCurrency rounds half up. Costs are never negative, so rounding
// half away from zero is the same.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}
