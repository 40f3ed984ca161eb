package v1

import (
	"github.com/family-meals/backend/internal/types"
	fm_uuid "github.com/family-meals/backend/internal/uuid"
)

type URIID struct {
	ID fm_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URIWeek identifies the plan or shopping list of a family for a week.
type URIWeek struct {
	URIID
	Week types.Week `uri:"week" example:"2024-W05" binding:"required"` // ISO 8601 week
}

// URIStockItem identifies the stock of one ingredient for a family.
type URIStockItem struct {
	URIID
	IngredientID fm_uuid.UUID `uri:"ingredientId" binding:"required" format:"UUID"` // ID of the ingredient
}

// URIShoppingListItem identifies an item on a shopping list.
type URIShoppingListItem struct {
	URIWeek
	IngredientID fm_uuid.UUID `uri:"ingredientId" binding:"required" format:"UUID"` // ID of the ingredient
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
