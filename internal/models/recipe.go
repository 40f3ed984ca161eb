package models

import (
	"fmt"
	"strings"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipe is a named list of ingredient lines.
type Recipe struct {
	DefaultModel
	Family   Family    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FamilyID uuid.UUID `gorm:"type:uuid"`
	Name     string
	Note     string
	Servings int
	Lines    []RecipeLine `gorm:"constraint:OnDelete:CASCADE"`
}

// RecipeLine is one ingredient line of a recipe.
//
// The ingredient is not a foreign key. Lines referencing ingredients that
// do not exist (anymore) are reported when a shopping list is generated.
type RecipeLine struct {
	RecipeID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position     int             `gorm:"primaryKey;autoIncrement:false"`
	IngredientID uuid.UUID       `gorm:"type:uuid"`
	Quantity     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Unit         string
}

// BeforeSave trims whitespace from all strings.
func (r *Recipe) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Note = strings.TrimSpace(r.Note)

	if r.Name == "" {
		return ErrRecipeNameEmpty
	}

	if r.Servings < 0 {
		r.Servings = 0
	}

	for i := range r.Lines {
		r.Lines[i].Position = i
	}

	return nil
}

// BeforeSave normalizes the unit and checks the quantity.
func (l *RecipeLine) BeforeSave(_ *gorm.DB) error {
	l.Unit = shopping.NormalizeUnit(l.Unit)
	if l.Unit == "" {
		return ErrUnitNameEmpty
	}

	if !l.Quantity.IsPositive() {
		return fmt.Errorf("%w, ingredient %s", ErrQuantityNotPositive, l.IngredientID)
	}

	return nil
}

// ReplaceLines replaces all lines of the recipe, keeping their order.
//
// It must be called with a transaction.
func (r *Recipe) ReplaceLines(tx *gorm.DB, lines []RecipeLine) error {
	err := tx.Where(&RecipeLine{RecipeID: r.ID}).Delete(&RecipeLine{}).Error
	if err != nil {
		return err
	}

	for i := range lines {
		lines[i].RecipeID = r.ID
		lines[i].Position = i
	}

	if len(lines) > 0 {
		err = tx.Create(&lines).Error
		if err != nil {
			return err
		}
	}

	r.Lines = lines
	return nil
}

// Engine returns the recipe as used for shopping list generation.
func (r Recipe) Engine() shopping.Recipe {
	lines := make([]shopping.RecipeLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, shopping.RecipeLine{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		})
	}

	return shopping.Recipe{
		ID:    r.ID,
		Name:  r.Name,
		Lines: lines,
	}
}

// orderedLines preloads recipe lines in the order they were written.
func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("recipe_lines.position ASC")
}

// PreloadLines returns a query that loads recipes with their lines in order.
func PreloadLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", orderedLines)
}
