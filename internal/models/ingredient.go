package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ingredient is a purchasable item.
//
// Its units define how recipe and stock quantities are converted to the
// standard unit the ingredient is bought and priced in.
type Ingredient struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex:ingredient_name"`
	Category string // Aisle or shelf the ingredient is found in, e.g. "Épicerie"
	Note     string
	Units    []IngredientUnit `gorm:"constraint:OnDelete:CASCADE"`
}

// IngredientUnit is one entry of the unit table of an ingredient.
type IngredientUnit struct {
	IngredientID     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name             string              `gorm:"primaryKey"`
	IsStandard       bool                // Quantities are aggregated and priced in the standard unit
	ConversionFactor decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Number of this unit in one standard unit
	StandardPrice    decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Price for one of this unit
}

// BeforeSave trims whitespace from all strings.
func (i *Ingredient) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	i.Note = strings.TrimSpace(i.Note)

	if i.Name == "" {
		return ErrIngredientNameEmpty
	}

	return nil
}

// BeforeCreate verifies that the units of the ingredient form a valid
// unit table before the ingredient is created.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	err := validateUnits(i.Units)
	if err != nil {
		return err
	}

	return i.DefaultModel.BeforeCreate(tx)
}

// BeforeSave normalizes the unit name and checks the conversion factor and price.
func (u *IngredientUnit) BeforeSave(_ *gorm.DB) error {
	u.Name = shopping.NormalizeUnit(u.Name)
	if u.Name == "" {
		return ErrUnitNameEmpty
	}

	if u.ConversionFactor.Valid && !u.ConversionFactor.Decimal.IsPositive() {
		return fmt.Errorf("%w, unit %s", ErrFactorNotPositive, u.Name)
	}

	if u.StandardPrice.Valid && u.StandardPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w, unit %s", ErrPriceNegative, u.Name)
	}

	return nil
}

// validateUnits checks that the units contain exactly one standard unit
// and no duplicates.
func validateUnits(units []IngredientUnit) error {
	_, err := unitsTable(units)
	if err != nil {
		return fmt.Errorf("the units of the ingredient are invalid: %w", err)
	}

	for _, unit := range units {
		if unit.ConversionFactor.Valid && !unit.ConversionFactor.Decimal.IsPositive() {
			return fmt.Errorf("%w, unit %s", ErrFactorNotPositive, shopping.NormalizeUnit(unit.Name))
		}
	}

	return nil
}

func unitsTable(units []IngredientUnit) (shopping.UnitsTable, error) {
	m := make(map[string]shopping.Unit, len(units))
	for _, unit := range units {
		name := shopping.NormalizeUnit(unit.Name)
		if _, ok := m[name]; ok {
			return shopping.UnitsTable{}, fmt.Errorf("%w: %s", shopping.ErrDuplicateUnit, name)
		}

		m[name] = shopping.Unit{
			IsStandard:       unit.IsStandard,
			ConversionFactor: unit.ConversionFactor,
			StandardPrice:    unit.StandardPrice,
		}
	}

	return shopping.NewUnitsTable(m)
}

// ReplaceUnits replaces the complete unit table of the ingredient.
//
// It must be called with a transaction.
func (i *Ingredient) ReplaceUnits(tx *gorm.DB, units []IngredientUnit) error {
	err := validateUnits(units)
	if err != nil {
		return err
	}

	err = tx.Where(&IngredientUnit{IngredientID: i.ID}).Delete(&IngredientUnit{}).Error
	if err != nil {
		return err
	}

	for idx := range units {
		units[idx].IngredientID = i.ID
	}

	if len(units) > 0 {
		err = tx.Create(&units).Error
		if err != nil {
			return err
		}
	}

	i.Units = units
	return nil
}

// Engine returns the ingredient with its validated unit table.
//
// An invalid unit table is kept. Every conversion with it fails and is
// reported as a diagnostic when a shopping list is generated.
func (i Ingredient) Engine() shopping.Ingredient {
	table, err := unitsTable(i.Units)
	if err != nil && !errors.Is(err, shopping.ErrNoStandardUnitDefined) {
		table = shopping.UnitsTable{}
	}

	return shopping.Ingredient{
		ID:       i.ID,
		Name:     i.Name,
		Category: i.Category,
		Units:    table,
	}
}

// PreloadUnits returns a query that loads ingredients with their units
// sorted by name.
func PreloadUnits(db *gorm.DB) *gorm.DB {
	return db.Preload("Units", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredient_units.name ASC")
	})
}
