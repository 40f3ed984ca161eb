package shopping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient is a purchasable item with its unit table.
type Ingredient struct {
	ID       uuid.UUID
	Name     string
	Category string
	Units    UnitsTable
}

// RecipeLine is one ingredient line of a recipe.
type RecipeLine struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	Unit         string
}

// Recipe is a named list of ingredient lines.
type Recipe struct {
	ID    uuid.UUID
	Name  string
	Lines []RecipeLine
}

// IngredientCatalog resolves ingredients by ID.
type IngredientCatalog interface {
	Ingredient(id uuid.UUID) (Ingredient, bool)
}

// RecipeCatalog resolves recipes by ID.
type RecipeCatalog interface {
	Recipe(id uuid.UUID) (Recipe, bool)
}

// Ingredients is an in-memory IngredientCatalog.
type Ingredients map[uuid.UUID]Ingredient

func (i Ingredients) Ingredient(id uuid.UUID) (Ingredient, bool) {
	ingredient, ok := i[id]
	return ingredient, ok
}

// Recipes is an in-memory RecipeCatalog.
type Recipes map[uuid.UUID]Recipe

func (r Recipes) Recipe(id uuid.UUID) (Recipe, bool) {
	recipe, ok := r[id]
	return recipe, ok
}

// StockEntry is the quantity of an ingredient currently on hand.
type StockEntry struct {
	Quantity decimal.Decimal
	Unit     string
}

// Stock is a pantry snapshot for one family, keyed by ingredient ID.
type Stock map[uuid.UUID]StockEntry
