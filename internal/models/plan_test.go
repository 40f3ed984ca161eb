package models_test

import (
	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/internal/shopping"
	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestPlanSaveAndFind() {
	family := suite.createTestFamily(models.Family{})
	recipe := suite.createTestRecipe(models.Recipe{FamilyID: family.ID})
	week := types.NewWeek(2024, 5)

	plan := suite.createTestPlan(family.ID, week, map[shopping.Day]map[shopping.Meal]uuid.UUID{
		shopping.Monday:   {shopping.Breakfast: recipe.ID, shopping.Dinner: recipe.ID},
		shopping.Saturday: {shopping.Lunch: recipe.ID},
	})
	suite.Assert().Len(plan.Slots, 3)

	found, err := models.FindPlan(models.DB, family.ID, week)
	suite.Require().Nil(err)
	suite.Assert().Equal(plan.ID, found.ID)
	suite.Assert().True(week.Equal(found.Week))
	suite.Assert().Equal([]uuid.UUID{recipe.ID}, found.RecipeIDs())

	grid := found.Engine()
	suite.Assert().Equal(3, grid.PlannedMeals())
	suite.Assert().Equal(recipe.ID, *grid.Get(shopping.Monday, shopping.Dinner))
	suite.Assert().Nil(grid.Get(shopping.Monday, shopping.Lunch))
}

func (suite *TestSuiteStandard) TestPlanSaveReplacesSlots() {
	family := suite.createTestFamily(models.Family{})
	recipe := suite.createTestRecipe(models.Recipe{FamilyID: family.ID})
	week := types.NewWeek(2024, 5)

	first := suite.createTestPlan(family.ID, week, map[shopping.Day]map[shopping.Meal]uuid.UUID{
		shopping.Monday: {shopping.Breakfast: recipe.ID},
	})

	second := suite.createTestPlan(family.ID, week, map[shopping.Day]map[shopping.Meal]uuid.UUID{
		shopping.Sunday: {shopping.Dinner: recipe.ID},
	})
	suite.Assert().Equal(first.ID, second.ID)

	found, err := models.FindPlan(models.DB, family.ID, week)
	suite.Require().Nil(err)
	suite.Require().Len(found.Slots, 1)
	suite.Assert().Equal("sunday", found.Slots[0].Day)
	suite.Assert().Equal("dinner", found.Slots[0].Meal)
}

func (suite *TestSuiteStandard) TestPlanNotFound() {
	family := suite.createTestFamily(models.Family{})

	_, err := models.FindPlan(models.DB, family.ID, types.NewWeek(2024, 5))
	suite.Assert().ErrorIs(err, models.ErrPlanNotFound)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPlanPerFamilyAndWeek() {
	family := suite.createTestFamily(models.Family{})
	week := types.NewWeek(2024, 5)

	suite.Require().Nil(models.DB.Create(&models.WeeklyPlan{FamilyID: family.ID, Week: week}).Error)
	suite.Require().Nil(models.DB.Create(&models.WeeklyPlan{FamilyID: family.ID, Week: week.AddWeeks(1)}).Error)

	err := models.DB.Create(&models.WeeklyPlan{FamilyID: family.ID, Week: week}).Error
	suite.Assert().ErrorIs(err, models.ErrPlanNotUnique)
}

func (suite *TestSuiteStandard) TestPlanEngineIgnoresUnknownSlots() {
	id := uuid.New()
	plan := models.WeeklyPlan{Slots: []models.PlanSlot{
		{Day: "someday", Meal: "lunch", RecipeID: id},
		{Day: "monday", Meal: "brunch", RecipeID: id},
		{Day: "friday", Meal: "lunch", RecipeID: id},
	}}

	suite.Assert().Equal(1, plan.Engine().PlannedMeals())
}
