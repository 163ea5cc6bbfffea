package models_test

import (
	"time"

	"github.com/budget-ok/budget-ok/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createEnvelope(name string) models.Envelope {
	envelope := models.Envelope{
		Name:   name,
		Budget: decimal.RequireFromString("300"),
	}

	err := suite.db.Create(&envelope).Error
	suite.Require().Nil(err)

	return envelope
}

func (suite *TestSuiteStandard) TestEnvelopeCreate() {
	envelope := suite.createEnvelope("Groceries")

	suite.Assert().NotEqual(uuid.Nil, envelope.ID, "An ID must be generated")
	suite.Assert().Equal(time.UTC, envelope.CreatedAt.Location())

	var found models.Envelope
	err := suite.db.First(&found, envelope.ID).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Groceries", found.Name)
	suite.Assert().True(decimal.RequireFromString("300").Equal(found.Budget))
	suite.Assert().Equal(time.UTC, found.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestEnvelopeNameNotUnique() {
	suite.createEnvelope("Groceries")

	err := suite.db.Create(&models.Envelope{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrEnvelopeNameNotUnique)
}

func (suite *TestSuiteStandard) TestEnvelopeUpdateNameNotUnique() {
	suite.createEnvelope("Groceries")
	rent := suite.createEnvelope("Rent")

	err := suite.db.Model(&rent).Select("Name").Updates(models.Envelope{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrEnvelopeNameNotUnique)
}

func (suite *TestSuiteStandard) TestEnvelopeNotFound() {
	err := suite.db.First(&models.Envelope{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no envelope matching your query")
}

func (suite *TestSuiteStandard) TestEnvelopeDeleteCascades() {
	envelope := suite.createEnvelope("Groceries")
	other := suite.createEnvelope("Rent")

	for _, id := range []uuid.UUID{envelope.ID, other.ID} {
		err := suite.db.Create(&models.Expense{
			EnvelopeID:      id,
			Amount:          decimal.RequireFromString("10"),
			TransactionType: models.TransactionWithdraw,
			Memo:            "milk",
			Date:            time.Now(),
		}).Error
		suite.Require().Nil(err)
	}

	err := suite.db.Select("Expenses").Delete(&envelope).Error
	suite.Require().Nil(err)

	var count int64
	suite.db.Model(&models.Expense{}).Where(&models.Expense{EnvelopeID: envelope.ID}).Count(&count)
	suite.Assert().Equal(int64(0), count, "Expenses of a deleted envelope must be deleted")

	suite.db.Model(&models.Expense{}).Count(&count)
	suite.Assert().Equal(int64(1), count, "Expenses of other envelopes must be kept")
}

func (suite *TestSuiteStandard) TestEnvelopeBalance() {
	envelope := models.Envelope{
		Expenses: []models.Expense{
			{Amount: decimal.RequireFromString("300"), TransactionType: models.TransactionDeposit},
			{Amount: decimal.RequireFromString("45.5"), TransactionType: models.TransactionWithdraw},
		},
	}

	suite.Assert().True(decimal.RequireFromString("254.5").Equal(envelope.Balance()), envelope.Balance().String())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := suite.db.Create(&models.Envelope{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
