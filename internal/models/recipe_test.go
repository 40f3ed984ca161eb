package models_test

import (
	"github.com/family-meals/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestRecipeLinesKeepOrder() {
	family := suite.createTestFamily(models.Family{})
	flour := suite.createFlour()
	eggs := suite.createTestIngredient(models.Ingredient{Name: "Œufs", Units: []models.IngredientUnit{{Name: "piece", IsStandard: true}}})

	recipe := suite.createTestRecipe(models.Recipe{
		FamilyID: family.ID,
		Name:     " Crêpes ",
		Servings: 4,
		Lines: []models.RecipeLine{
			{IngredientID: flour.ID, Quantity: d("250"), Unit: " G "},
			{IngredientID: eggs.ID, Quantity: d("4"), Unit: "piece"},
		},
	})
	suite.Assert().Equal("Crêpes", recipe.Name)

	var stored models.Recipe
	err := models.PreloadLines(models.DB).First(&stored, recipe.ID).Error
	suite.Require().Nil(err)
	suite.Require().Len(stored.Lines, 2)

	suite.Assert().Equal(0, stored.Lines[0].Position)
	suite.Assert().Equal(flour.ID, stored.Lines[0].IngredientID)
	suite.Assert().Equal("g", stored.Lines[0].Unit)
	suite.Assert().Equal(1, stored.Lines[1].Position)
	suite.Assert().Equal(eggs.ID, stored.Lines[1].IngredientID)

	engine := stored.Engine()
	suite.Assert().Equal(recipe.ID, engine.ID)
	suite.Require().Len(engine.Lines, 2)
	suite.Assert().True(d("250").Equal(engine.Lines[0].Quantity))
}

func (suite *TestSuiteStandard) TestRecipeValidation() {
	family := suite.createTestFamily(models.Family{})

	err := models.DB.Create(&models.Recipe{FamilyID: family.ID, Name: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrRecipeNameEmpty)

	err = models.DB.Create(&models.Recipe{
		FamilyID: family.ID,
		Name:     "Soupe",
		Lines:    []models.RecipeLine{{IngredientID: uuid.New(), Quantity: d("0"), Unit: "kg"}},
	}).Error
	suite.Assert().ErrorIs(err, models.ErrQuantityNotPositive)

	err = models.DB.Create(&models.Recipe{
		FamilyID: family.ID,
		Name:     "Soupe",
		Lines:    []models.RecipeLine{{IngredientID: uuid.New(), Quantity: d("1"), Unit: ""}},
	}).Error
	suite.Assert().ErrorIs(err, models.ErrUnitNameEmpty)
}

func (suite *TestSuiteStandard) TestRecipeFamilyMustExist() {
	err := models.DB.Create(&models.Recipe{FamilyID: uuid.New(), Name: "Soupe"}).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceInvalid)
}

func (suite *TestSuiteStandard) TestRecipeMissingIngredientIsAllowed() {
	family := suite.createTestFamily(models.Family{})

	// Missing ingredients are reported when generating a shopping list
	_ = suite.createTestRecipe(models.Recipe{
		FamilyID: family.ID,
		Lines:    []models.RecipeLine{{IngredientID: uuid.New(), Quantity: d("1"), Unit: "kg"}},
	})
}

func (suite *TestSuiteStandard) TestRecipeReplaceLines() {
	family := suite.createTestFamily(models.Family{})
	flour := suite.createFlour()
	recipe := suite.createTestRecipe(models.Recipe{
		FamilyID: family.ID,
		Lines: []models.RecipeLine{
			{IngredientID: flour.ID, Quantity: d("250"), Unit: "g"},
			{IngredientID: flour.ID, Quantity: d("1"), Unit: "kg"},
		},
	})

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return recipe.ReplaceLines(tx, []models.RecipeLine{{IngredientID: flour.ID, Quantity: d("0.5"), Unit: "kg"}})
	})
	suite.Require().Nil(err)

	var stored models.Recipe
	suite.Require().Nil(models.PreloadLines(models.DB).First(&stored, recipe.ID).Error)
	suite.Require().Len(stored.Lines, 1)
	suite.Assert().True(d("0.5").Equal(stored.Lines[0].Quantity))
}

func (suite *TestSuiteStandard) TestRecipeDeletedWithFamily() {
	family := suite.createTestFamily(models.Family{})
	recipe := suite.createTestRecipe(models.Recipe{FamilyID: family.ID})

	suite.Require().Nil(models.DB.Delete(&family).Error)

	err := models.DB.First(&models.Recipe{}, recipe.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
