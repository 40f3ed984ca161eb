package models

import (
	"fmt"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockItem is the quantity of an ingredient a family has on hand.
type StockItem struct {
	Timestamps
	Family       Family          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FamilyID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Ingredient   Ingredient      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IngredientID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Unit         string
}

// BeforeSave normalizes the unit and checks the quantity.
func (s *StockItem) BeforeSave(_ *gorm.DB) error {
	s.Unit = shopping.NormalizeUnit(s.Unit)
	if s.Unit == "" {
		return ErrUnitNameEmpty
	}

	if s.Quantity.IsNegative() {
		return fmt.Errorf("%w, ingredient %s", ErrQuantityNegative, s.IngredientID)
	}

	return nil
}

// FamilyStock returns the pantry snapshot of a family.
func FamilyStock(db *gorm.DB, familyID uuid.UUID) (shopping.Stock, error) {
	var items []StockItem
	err := db.Where(&StockItem{FamilyID: familyID}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	stock := make(shopping.Stock, len(items))
	for _, item := range items {
		stock[item.IngredientID] = shopping.StockEntry{
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
	}

	return stock, nil
}

// SetStock creates the stock item or updates quantity and unit of the
// existing one.
func SetStock(db *gorm.DB, item *StockItem) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "family_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit", "updated_at"}),
	}).Create(item).Error
}
