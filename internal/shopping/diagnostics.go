package shopping

import (
	"errors"

	"github.com/google/uuid"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindUnknownUnit           Kind = "UnknownUnit"
	KindNoStandardUnitDefined Kind = "NoStandardUnitDefined"
	KindNotConvertible        Kind = "NotConvertible"
	KindMissingIngredient     Kind = "MissingIngredient"
	KindMissingRecipe         Kind = "MissingRecipe"
	KindStockNotConvertible   Kind = "StockNotConvertible"
	KindMissingPrice          Kind = "MissingPrice"
)

// Diagnostic is a non-fatal problem found while generating a shopping list.
type Diagnostic struct {
	Kind         Kind       `json:"kind" example:"NotConvertible"`
	IngredientID *uuid.UUID `json:"ingredientId,omitempty" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	RecipeID     *uuid.UUID `json:"recipeId,omitempty" example:"a9a3f1c4-63c4-4b3a-9a07-6f0a8f6a3f52"`
	Unit         string     `json:"unit,omitempty" example:"piece"`
	Day          string     `json:"day,omitempty" example:"monday"`
	Meal         string     `json:"meal,omitempty" example:"lunch"`
	Message      string     `json:"message" example:"the unit has no conversion factor to the standard unit: \"piece\""`
}

// Diagnostics is the list of diagnostics of one generation run.
type Diagnostics []Diagnostic

// Count returns the number of diagnostics of the given kind.
func (d Diagnostics) Count(kind Kind) int {
	n := 0
	for _, diagnostic := range d {
		if diagnostic.Kind == kind {
			n++
		}
	}

	return n
}

// Ingredients returns the number of distinct ingredients with a diagnostic
// of the given kind.
func (d Diagnostics) Ingredients(kind Kind) int {
	seen := make(map[uuid.UUID]bool)
	for _, diagnostic := range d {
		if diagnostic.Kind == kind && diagnostic.IngredientID != nil {
			seen[*diagnostic.IngredientID] = true
		}
	}

	return len(seen)
}

// conversionKind maps a conversion error to its diagnostic kind.
func conversionKind(err error) Kind {
	switch {
	case errors.Is(err, ErrUnknownUnit):
		return KindUnknownUnit
	case errors.Is(err, ErrNotConvertible):
		return KindNotConvertible
	default:
		return KindNoStandardUnitDefined
	}
}

func ref(id uuid.UUID) *uuid.UUID {
	return &id
}
