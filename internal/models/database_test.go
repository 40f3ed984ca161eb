package models_test

import (
	"path/filepath"

	"github.com/family-meals/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDatabaseNotFoundMessage() {
	tests := []struct {
		model   any
		message string
	}{
		{&models.Family{}, "there is no family matching your query"},
		{&models.Ingredient{}, "there is no ingredient matching your query"},
		{&models.Recipe{}, "there is no recipe matching your query"},
		{&models.ShoppingList{}, "there is no shopping list matching your query"},
	}

	for _, tt := range tests {
		err := models.DB.First(tt.model, uuid.New()).Error
		suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
		suite.Assert().Equal(tt.message, err.Error())
	}
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.First(&models.Family{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.DB.Create(&models.Family{Name: "Martin"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestDatabaseConnectInvalidPath() {
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "directory", "db"))
	suite.Assert().NotNil(err)
}
