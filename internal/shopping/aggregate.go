package shopping

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Line is the aggregated demand for one ingredient, in its standard unit.
type Line struct {
	IngredientID    uuid.UUID           `json:"ingredientId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Name            string              `json:"name" example:"Farine"`
	Category        string              `json:"category" example:"Épicerie"`
	GrossQuantity   decimal.Decimal     `json:"grossQuantity" example:"1.5"`
	StockQuantity   decimal.Decimal     `json:"stockQuantity" example:"0.5"`
	NetQuantity     decimal.Decimal     `json:"netQuantity" example:"1"`
	Unit            string              `json:"unit" example:"kg"`
	PricePerUnit    decimal.NullDecimal `json:"pricePerUnit" swaggertype:"primitive,string" example:"1.20"`
	TheoreticalCost decimal.Decimal     `json:"theoreticalCost" example:"1.80"`
	ActualCost      decimal.Decimal     `json:"actualCost" example:"1.20"`
	NeedsPriceInput bool                `json:"needsPriceInput" example:"false"`
	IsChecked       bool                `json:"isChecked" example:"false"`
	Recipes         []uuid.UUID         `json:"recipes"` // Recipes requiring the ingredient, in plan order
}

// Aggregate groups demand by ingredient and sums the quantities converted
// to each ingredient's standard unit.
//
// Lines for ingredients missing from the catalog and lines whose unit cannot
// be converted are excluded from the sum and reported.
func Aggregate(demand []DemandLine, ingredients IngredientCatalog) (map[uuid.UUID]Line, Diagnostics) {
	lines := make(map[uuid.UUID]Line)
	var diagnostics Diagnostics

	for _, d := range demand {
		ingredient, ok := ingredients.Ingredient(d.IngredientID)
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:         KindMissingIngredient,
				IngredientID: ref(d.IngredientID),
				RecipeID:     ref(d.RecipeID),
				Day:          d.Day.String(),
				Meal:         d.Meal.String(),
				Message:      "the ingredient does not exist",
			})
			continue
		}

		converted, err := ingredient.Units.Convert(d.Quantity, d.Unit)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:         conversionKind(err),
				IngredientID: ref(d.IngredientID),
				RecipeID:     ref(d.RecipeID),
				Unit:         d.Unit,
				Day:          d.Day.String(),
				Meal:         d.Meal.String(),
				Message:      fmt.Sprintf("%s: %s", ingredient.Name, err),
			})
			continue
		}

		line, ok := lines[d.IngredientID]
		if !ok {
			line = Line{
				IngredientID:  ingredient.ID,
				Name:          ingredient.Name,
				Category:      ingredient.Category,
				GrossQuantity: decimal.Zero,
				Unit:          converted.Unit,
			}
		}

		line.GrossQuantity = line.GrossQuantity.Add(converted.Quantity)
		if !slices.Contains(line.Recipes, d.RecipeID) {
			line.Recipes = append(line.Recipes, d.RecipeID)
		}

		lines[d.IngredientID] = line
	}

	return lines, diagnostics
}
