package models_test

import (
	"github.com/family-meals/backend/internal/models"
)

func (suite *TestSuiteStandard) TestStockSetAndList() {
	family := suite.createTestFamily(models.Family{})
	flour := suite.createFlour()

	suite.Require().Nil(models.SetStock(models.DB, &models.StockItem{FamilyID: family.ID, IngredientID: flour.ID, Quantity: d("500"), Unit: "G"}))

	// Setting the stock again overwrites quantity and unit
	suite.Require().Nil(models.SetStock(models.DB, &models.StockItem{FamilyID: family.ID, IngredientID: flour.ID, Quantity: d("0.5"), Unit: "kg"}))

	stock, err := models.FamilyStock(models.DB, family.ID)
	suite.Require().Nil(err)
	suite.Require().Len(stock, 1)
	suite.Assert().True(d("0.5").Equal(stock[flour.ID].Quantity))
	suite.Assert().Equal("kg", stock[flour.ID].Unit)

	other := suite.createTestFamily(models.Family{Name: "Dupont"})
	stock, err = models.FamilyStock(models.DB, other.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(stock)
}

func (suite *TestSuiteStandard) TestStockValidation() {
	family := suite.createTestFamily(models.Family{})
	flour := suite.createFlour()

	err := models.SetStock(models.DB, &models.StockItem{FamilyID: family.ID, IngredientID: flour.ID, Quantity: d("-1"), Unit: "kg"})
	suite.Assert().ErrorIs(err, models.ErrQuantityNegative)

	err = models.SetStock(models.DB, &models.StockItem{FamilyID: family.ID, IngredientID: flour.ID, Quantity: d("1"), Unit: " "})
	suite.Assert().ErrorIs(err, models.ErrUnitNameEmpty)
}

func (suite *TestSuiteStandard) TestStockIngredientMustExist() {
	family := suite.createTestFamily(models.Family{})
	flour := suite.createFlour()
	suite.Require().Nil(models.DB.Delete(&flour).Error)

	err := models.SetStock(models.DB, &models.StockItem{FamilyID: family.ID, IngredientID: flour.ID, Quantity: d("1"), Unit: "kg"})
	suite.Assert().ErrorIs(err, models.ErrReferenceInvalid)
}
