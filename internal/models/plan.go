package models

import (
	"time"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyPlan is the meal plan of a family for one ISO week.
//
// Only slots with a recipe are stored, all other meals are unplanned.
type WeeklyPlan struct {
	DefaultModel
	Family   Family     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FamilyID uuid.UUID  `gorm:"type:uuid;uniqueIndex:plan_family_week"`
	Week     types.Week `gorm:"uniqueIndex:plan_family_week"`
	Slots    []PlanSlot `gorm:"constraint:OnDelete:CASCADE"`
}

// PlanSlot is one planned meal.
type PlanSlot struct {
	WeeklyPlanID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day          string    `gorm:"primaryKey"`
	Meal         string    `gorm:"primaryKey"`
	RecipeID     uuid.UUID `gorm:"type:uuid"`
}

// Engine returns the plan as day × meal grid.
//
// Slots with an unknown day or meal cannot be written through the API and
// are ignored.
func (p WeeklyPlan) Engine() shopping.WeeklyPlan {
	var plan shopping.WeeklyPlan
	for _, slot := range p.Slots {
		d, err := shopping.ParseDay(slot.Day)
		if err != nil {
			continue
		}

		m, err := shopping.ParseMeal(slot.Meal)
		if err != nil {
			continue
		}

		id := slot.RecipeID
		plan.Set(d, m, &id)
	}

	return plan
}

// RecipeIDs returns the distinct IDs of all planned recipes.
func (p WeeklyPlan) RecipeIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, slot := range p.Slots {
		if !seen[slot.RecipeID] {
			seen[slot.RecipeID] = true
			ids = append(ids, slot.RecipeID)
		}
	}

	return ids
}

// slotsFromPlan returns the slots for all planned meals of the grid, in plan order.
func slotsFromPlan(plan shopping.WeeklyPlan) []PlanSlot {
	slots := make([]PlanSlot, 0, plan.PlannedMeals())
	for _, d := range shopping.Days {
		for _, m := range shopping.Meals {
			id := plan.Get(d, m)
			if id == nil {
				continue
			}

			slots = append(slots, PlanSlot{
				Day:      d.String(),
				Meal:     m.String(),
				RecipeID: *id,
			})
		}
	}

	return slots
}

// SavePlan creates or replaces the plan for a family and week.
//
// It must be called with a transaction.
func SavePlan(tx *gorm.DB, familyID uuid.UUID, week types.Week, plan shopping.WeeklyPlan) (WeeklyPlan, error) {
	var existing []WeeklyPlan
	err := tx.Where("family_id = ? AND week = ?", familyID, week).Limit(1).Find(&existing).Error
	if err != nil {
		return WeeklyPlan{}, err
	}

	var p WeeklyPlan
	if len(existing) == 0 {
		p = WeeklyPlan{FamilyID: familyID, Week: week}
		err = tx.Create(&p).Error
		if err != nil {
			return WeeklyPlan{}, err
		}
	} else {
		p = existing[0]

		// Bump the update timestamp
		err = tx.Model(&p).Update("updated_at", time.Now().UTC()).Error
		if err != nil {
			return WeeklyPlan{}, err
		}
	}

	err = tx.Where(&PlanSlot{WeeklyPlanID: p.ID}).Delete(&PlanSlot{}).Error
	if err != nil {
		return WeeklyPlan{}, err
	}

	slots := slotsFromPlan(plan)
	for i := range slots {
		slots[i].WeeklyPlanID = p.ID
	}

	if len(slots) > 0 {
		err = tx.Create(&slots).Error
		if err != nil {
			return WeeklyPlan{}, err
		}
	}

	p.Slots = slots
	return p, nil
}

// FindPlan returns the plan of a family for a week.
//
// If there is none, the error is ErrPlanNotFound.
func FindPlan(db *gorm.DB, familyID uuid.UUID, week types.Week) (WeeklyPlan, error) {
	var plans []WeeklyPlan
	err := db.Preload("Slots").Where("family_id = ? AND week = ?", familyID, week).Limit(1).Find(&plans).Error
	if err != nil {
		return WeeklyPlan{}, err
	}

	if len(plans) == 0 {
		return WeeklyPlan{}, ErrPlanNotFound
	}

	return plans[0], nil
}
