package shopping

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnknownDay  = errors.New("unknown day, must be one of monday, tuesday, wednesday, thursday, friday, saturday, sunday")
	ErrUnknownMeal = errors.New("unknown meal, must be one of breakfast, lunch, dinner")
)

// Day is a day of the planned week, Monday being the first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Days contains all days in plan order.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDay parses a lower case day key.
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if name == s {
			return Day(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Meal is one of the three meal slots of a day.
type Meal int

const (
	Breakfast Meal = iota
	Lunch
	Dinner
)

// Meals contains all meals in plan order.
var Meals = [3]Meal{Breakfast, Lunch, Dinner}

var mealNames = [3]string{"breakfast", "lunch", "dinner"}

func (m Meal) String() string {
	if m < Breakfast || m > Dinner {
		return fmt.Sprintf("Meal(%d)", int(m))
	}
	return mealNames[m]
}

// ParseMeal parses a lower case meal key.
func ParseMeal(s string) (Meal, error) {
	for i, name := range mealNames {
		if name == s {
			return Meal(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMeal, s)
}

// WeeklyPlan is the day × meal grid of recipe references for one week.
//
// The grid is a fixed size array, so every slot always exists. A nil
// reference is an unplanned meal.
type WeeklyPlan struct {
	slots [7][3]*uuid.UUID
}

// Set sets the recipe for a slot. A nil recipe clears the slot.
func (p *WeeklyPlan) Set(d Day, m Meal, recipeID *uuid.UUID) {
	if recipeID == nil {
		p.slots[d][m] = nil
		return
	}

	id := *recipeID
	p.slots[d][m] = &id
}

// Get returns the recipe reference for a slot.
func (p WeeklyPlan) Get(d Day, m Meal) *uuid.UUID {
	return p.slots[d][m]
}

// PlannedMeals returns the number of slots with a recipe reference.
func (p WeeklyPlan) PlannedMeals() int {
	n := 0
	for _, d := range Days {
		for _, m := range Meals {
			if p.slots[d][m] != nil {
				n++
			}
		}
	}

	return n
}

// Grid returns the plan as nested maps. The result always contains all
// seven days and all three meals per day, with nil for unplanned meals.
func (p WeeklyPlan) Grid() map[string]map[string]*uuid.UUID {
	grid := make(map[string]map[string]*uuid.UUID, len(Days))
	for _, d := range Days {
		meals := make(map[string]*uuid.UUID, len(Meals))
		for _, m := range Meals {
			meals[m.String()] = p.slots[d][m]
		}
		grid[d.String()] = meals
	}

	return grid
}

// PlanFromGrid builds a plan from nested maps as returned by Grid.
//
// Unknown day or meal keys are rejected. Keys that are not present are
// unplanned meals.
func PlanFromGrid(grid map[string]map[string]*uuid.UUID) (WeeklyPlan, error) {
	var p WeeklyPlan

	for dayKey, meals := range grid {
		d, err := ParseDay(dayKey)
		if err != nil {
			return WeeklyPlan{}, err
		}

		for mealKey, recipeID := range meals {
			m, err := ParseMeal(mealKey)
			if err != nil {
				return WeeklyPlan{}, err
			}

			p.Set(d, m, recipeID)
		}
	}

	return p, nil
}
