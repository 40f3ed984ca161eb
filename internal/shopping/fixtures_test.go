package shopping_test

import (
	"testing"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

// unitsTable builds a valid units table or fails the test.
func unitsTable(t *testing.T, units map[string]shopping.Unit) shopping.UnitsTable {
	table, err := shopping.NewUnitsTable(units)
	require.Nil(t, err, "units table is invalid")
	return table
}

// flour is "Farine" with kg as standard unit priced at 1000 per kg and
// g convertible with a factor of 1000.
func flour(t *testing.T) shopping.Ingredient {
	return shopping.Ingredient{
		ID:       uuid.MustParse("00000000-0000-0000-0000-00000000f001"),
		Name:     "Farine",
		Category: "Épicerie",
		Units: unitsTable(t, map[string]shopping.Unit{
			"kg": {IsStandard: true, StandardPrice: nd("1000")},
			"g":  {ConversionFactor: nd("1000")},
		}),
	}
}

// eggs has "piece" as a non-convertible unit next to the standard "dozen".
func eggs(t *testing.T) shopping.Ingredient {
	return shopping.Ingredient{
		ID:       uuid.MustParse("00000000-0000-0000-0000-00000000e001"),
		Name:     "Œufs",
		Category: "Crèmerie",
		Units: unitsTable(t, map[string]shopping.Unit{
			"dozen": {IsStandard: true, StandardPrice: nd("3.60")},
			"piece": {},
		}),
	}
}

// eggsByPiece has "piece" as its standard unit.
func eggsByPiece(t *testing.T) shopping.Ingredient {
	return shopping.Ingredient{
		ID:       uuid.MustParse("00000000-0000-0000-0000-00000000e001"),
		Name:     "Œufs",
		Category: "Crèmerie",
		Units: unitsTable(t, map[string]shopping.Unit{
			"piece": {IsStandard: true, StandardPrice: nd("0.30")},
		}),
	}
}

func recipe(id string, lines ...shopping.RecipeLine) shopping.Recipe {
	return shopping.Recipe{
		ID:    uuid.MustParse(id),
		Name:  id,
		Lines: lines,
	}
}

func line(ingredient shopping.Ingredient, quantity, unit string) shopping.RecipeLine {
	return shopping.RecipeLine{
		IngredientID: ingredient.ID,
		Quantity:     d(quantity),
		Unit:         unit,
	}
}

func catalog(ingredients ...shopping.Ingredient) shopping.Ingredients {
	c := make(shopping.Ingredients, len(ingredients))
	for _, i := range ingredients {
		c[i.ID] = i
	}
	return c
}

func recipes(rs ...shopping.Recipe) shopping.Recipes {
	c := make(shopping.Recipes, len(rs))
	for _, r := range rs {
		c[r.ID] = r
	}
	return c
}
