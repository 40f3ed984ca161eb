package shopping

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var errMissingIngredient = errors.New("the ingredient does not exist")

// Net subtracts the stock on hand from the gross quantity of a line.
//
// Stock that cannot be converted to the line's unit counts as zero, so the
// shopper is never told to buy less than needed. The net quantity is
// floored at zero.
func Net(line Line, entry *StockEntry, ingredients IngredientCatalog) (Line, *Diagnostic) {
	line.StockQuantity = decimal.Zero

	if entry == nil {
		line.NetQuantity = decimal.Max(decimal.Zero, line.GrossQuantity)
		return line, nil
	}

	stock, err := stockQuantity(line, *entry, ingredients)
	if err != nil {
		line.NetQuantity = decimal.Max(decimal.Zero, line.GrossQuantity)
		return line, &Diagnostic{
			Kind:         KindStockNotConvertible,
			IngredientID: ref(line.IngredientID),
			Unit:         entry.Unit,
			Message:      fmt.Sprintf("%s: stock is ignored: %s", line.Name, err),
		}
	}

	// Negative stock is treated as no stock
	line.StockQuantity = decimal.Max(decimal.Zero, stock)
	line.NetQuantity = decimal.Max(decimal.Zero, line.GrossQuantity.Sub(line.StockQuantity))
	return line, nil
}

func stockQuantity(line Line, entry StockEntry, ingredients IngredientCatalog) (decimal.Decimal, error) {
	ingredient, ok := ingredients.Ingredient(line.IngredientID)
	if !ok {
		return decimal.Zero, errMissingIngredient
	}

	converted, err := ingredient.Units.Convert(entry.Quantity, entry.Unit)
	if err != nil {
		return decimal.Zero, err
	}

	if converted.Unit != line.Unit {
		return decimal.Zero, fmt.Errorf("%w: stock converts to %q, the list uses %q", ErrNotConvertible, converted.Unit, line.Unit)
	}

	return converted.Quantity, nil
}
