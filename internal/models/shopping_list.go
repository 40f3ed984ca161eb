package models

import (
	"github.com/family-meals/backend/internal/shopping"
	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListStatus summarizes the outcome of a generation run.
type ListStatus string

const (
	ListStatusComplete ListStatus = "complete" // Every line was converted and priced
	ListStatusPartial  ListStatus = "partial"  // Some lines produced diagnostics
	ListStatusEmpty    ListStatus = "empty"    // Everything is in stock
)

// ShoppingList is the generated shopping list of a family for one week.
//
// There is at most one list per family and week, generating it again
// replaces it.
type ShoppingList struct {
	DefaultModel
	Family               Family               `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FamilyID             uuid.UUID            `gorm:"type:uuid;uniqueIndex:shopping_list_family_week"`
	Week                 types.Week           `gorm:"uniqueIndex:shopping_list_family_week"`
	Status               ListStatus           `gorm:"type:varchar(16)"`
	TotalTheoreticalCost decimal.Decimal      `gorm:"type:DECIMAL(20,8)"`
	TotalActualCost      decimal.Decimal      `gorm:"type:DECIMAL(20,8)"`
	Warnings             int                  // Number of diagnostics of the generation run
	Diagnostics          shopping.Diagnostics `gorm:"serializer:json"`
	Items                []ShoppingListItem   `gorm:"constraint:OnDelete:CASCADE"`
}

// ShoppingListItem is one ingredient to buy.
type ShoppingListItem struct {
	ShoppingListID  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	IngredientID    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Position        int                 // Position of the item in the sorted list
	Name            string
	Category        string
	GrossQuantity   decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	StockQuantity   decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	NetQuantity     decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	Unit            string
	PricePerUnit    decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	TheoreticalCost decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	ActualCost      decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	NeedsPriceInput bool
	IsChecked       bool
	Recipes         []uuid.UUID `gorm:"serializer:json"`
}

// newShoppingList converts a generated list to its database representation.
func newShoppingList(result shopping.Result) ShoppingList {
	list := ShoppingList{
		FamilyID:             result.List.FamilyID,
		Week:                 result.List.Week,
		TotalTheoreticalCost: result.List.TotalTheoreticalCost,
		TotalActualCost:      result.List.TotalActualCost,
		Warnings:             len(result.Diagnostics),
		Diagnostics:          result.Diagnostics,
		Items:                make([]ShoppingListItem, 0, len(result.List.Items)),
	}
	list.CreatedAt = result.List.CreatedAt

	switch {
	case len(result.List.Items) == 0:
		list.Status = ListStatusEmpty
	case len(result.Diagnostics) > 0:
		list.Status = ListStatusPartial
	default:
		list.Status = ListStatusComplete
	}

	for i, line := range result.List.Items {
		list.Items = append(list.Items, ShoppingListItem{
			IngredientID:    line.IngredientID,
			Position:        i,
			Name:            line.Name,
			Category:        line.Category,
			GrossQuantity:   line.GrossQuantity,
			StockQuantity:   line.StockQuantity,
			NetQuantity:     line.NetQuantity,
			Unit:            line.Unit,
			PricePerUnit:    line.PricePerUnit,
			TheoreticalCost: line.TheoreticalCost,
			ActualCost:      line.ActualCost,
			NeedsPriceInput: line.NeedsPriceInput,
			IsChecked:       line.IsChecked,
			Recipes:         line.Recipes,
		})
	}

	return list
}

// PreloadItems returns a query that loads shopping lists with their items in order.
func PreloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("shopping_list_items.position ASC")
	})
}

// FindShoppingList returns the shopping list of a family for a week.
func FindShoppingList(db *gorm.DB, familyID uuid.UUID, week types.Week) (ShoppingList, error) {
	var list ShoppingList
	err := PreloadItems(db).Where("family_id = ? AND week = ?", familyID, week).First(&list).Error
	return list, err
}

// SetChecked sets the checked state of an item on the list.
func (l ShoppingList) SetChecked(db *gorm.DB, ingredientID uuid.UUID, checked bool) (ShoppingListItem, error) {
	var item ShoppingListItem
	err := db.Where("shopping_list_id = ? AND ingredient_id = ?", l.ID, ingredientID).First(&item).Error
	if err != nil {
		return ShoppingListItem{}, err
	}

	err = db.Model(&item).Update("is_checked", checked).Error
	if err != nil {
		return ShoppingListItem{}, err
	}

	item.IsChecked = checked
	return item, nil
}
