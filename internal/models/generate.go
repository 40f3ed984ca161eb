package models

import (
	"time"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GenerateShoppingList generates the shopping list of a family for a week
// and replaces the stored list.
//
// With preserveChecked, items that were already checked on the previous
// list stay checked. On error, the diagnostics of the run are returned
// with an unsaved list.
func GenerateShoppingList(db *gorm.DB, familyID uuid.UUID, week types.Week, preserveChecked bool) (ShoppingList, error) {
	var family Family
	err := db.First(&family, familyID).Error
	if err != nil {
		return ShoppingList{}, err
	}

	plan, err := FindPlan(db, familyID, week)
	if err != nil {
		return ShoppingList{}, err
	}

	recipes, err := recipeCatalog(db, familyID, plan.RecipeIDs())
	if err != nil {
		return ShoppingList{}, err
	}

	ingredients, err := ingredientCatalog(db, recipes)
	if err != nil {
		return ShoppingList{}, err
	}

	stock, err := FamilyStock(db, familyID)
	if err != nil {
		return ShoppingList{}, err
	}

	result, err := shopping.Generate(shopping.Input{
		FamilyID:    familyID,
		Week:        week,
		Plan:        plan.Engine(),
		Recipes:     recipes,
		Ingredients: ingredients,
		Stock:       stock,
		Locale:      family.Language(),
		Now:         time.Now().UTC(),
	})

	for _, d := range result.Diagnostics {
		event := log.Warn().Str("family", familyID.String()).Str("week", week.String()).Str("kind", string(d.Kind))
		if d.IngredientID != nil {
			event = event.Str("ingredient", d.IngredientID.String())
		}
		if d.RecipeID != nil {
			event = event.Str("recipe", d.RecipeID.String())
		}
		event.Msg(d.Message)
	}

	if n := result.Diagnostics.Ingredients(shopping.KindMissingPrice); n > 0 {
		log.Info().Str("family", familyID.String()).Str("week", week.String()).Int("ingredients", n).Msg("ingredients could not be priced")
	}

	if err != nil {
		return ShoppingList{FamilyID: familyID, Week: week, Warnings: len(result.Diagnostics), Diagnostics: result.Diagnostics}, err
	}

	list := newShoppingList(result)
	err = db.Transaction(func(tx *gorm.DB) error {
		return replaceShoppingList(tx, &list, preserveChecked)
	})
	if err != nil {
		return ShoppingList{}, err
	}

	return list, nil
}

// replaceShoppingList deletes the stored list for the family and week
// and creates the new one.
func replaceShoppingList(tx *gorm.DB, list *ShoppingList, preserveChecked bool) error {
	var previous []ShoppingList
	err := PreloadItems(tx).Where("family_id = ? AND week = ?", list.FamilyID, list.Week).Find(&previous).Error
	if err != nil {
		return err
	}

	for _, p := range previous {
		if preserveChecked {
			checked := make(map[uuid.UUID]bool, len(p.Items))
			for _, item := range p.Items {
				checked[item.IngredientID] = item.IsChecked
			}

			for i := range list.Items {
				list.Items[i].IsChecked = checked[list.Items[i].IngredientID]
			}
		}

		err = tx.Where(&ShoppingListItem{ShoppingListID: p.ID}).Delete(&ShoppingListItem{}).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&p).Error
		if err != nil {
			return err
		}
	}

	return tx.Create(list).Error
}

// recipeCatalog loads the recipes of the family with the given IDs.
//
// Recipes of other families are not part of the catalog.
func recipeCatalog(db *gorm.DB, familyID uuid.UUID, ids []uuid.UUID) (shopping.Recipes, error) {
	catalog := make(shopping.Recipes, len(ids))
	if len(ids) == 0 {
		return catalog, nil
	}

	var recipes []Recipe
	err := PreloadLines(db).Where("id IN ? AND family_id = ?", ids, familyID).Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	for _, r := range recipes {
		catalog[r.ID] = r.Engine()
	}

	return catalog, nil
}

// ingredientCatalog loads all ingredients used by the recipes.
func ingredientCatalog(db *gorm.DB, recipes shopping.Recipes) (shopping.Ingredients, error) {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, r := range recipes {
		for _, l := range r.Lines {
			if !seen[l.IngredientID] {
				seen[l.IngredientID] = true
				ids = append(ids, l.IngredientID)
			}
		}
	}

	catalog := make(shopping.Ingredients, len(ids))
	if len(ids) == 0 {
		return catalog, nil
	}

	var ingredients []Ingredient
	err := PreloadUnits(db).Where("id IN ?", ids).Find(&ingredients).Error
	if err != nil {
		return nil, err
	}

	for _, i := range ingredients {
		catalog[i.ID] = i.Engine()
	}

	return catalog, nil
}
