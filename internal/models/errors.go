package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReferenceInvalid = errors.New("a resource ID you specified does not identify an existing resource")
)

var (
	ErrFamilyNameEmpty = errors.New("the name of the family must not be empty")
	ErrLocaleInvalid   = errors.New("the locale is not a valid BCP 47 language tag, e.g. fr-FR")
)

var (
	ErrIngredientNameEmpty     = errors.New("the name of the ingredient must not be empty")
	ErrIngredientNameNotUnique = errors.New("the ingredient name must be unique")
	ErrUnitNameEmpty           = errors.New("the name of a unit must not be empty")
	ErrFactorNotPositive       = errors.New("the conversion factor of a unit must be greater than zero")
	ErrPriceNegative           = errors.New("the price of a unit must not be negative")
)

var (
	ErrRecipeNameEmpty     = errors.New("the name of the recipe must not be empty")
	ErrQuantityNotPositive = errors.New("the quantity must be greater than zero")
	ErrQuantityNegative    = errors.New("the quantity must not be negative")
)

var (
	ErrPlanNotUnique         = errors.New("there is already a meal plan for this family and week")
	ErrPlanNotFound          = fmt.Errorf("%w meal plan for this family and week, create one before generating a shopping list", ErrResourceNotFound)
	ErrShoppingListNotUnique = errors.New("there is already a shopping list for this family and week")
)
