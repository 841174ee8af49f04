package orders

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbh, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbh.AutoMigrate(
		&models.RestaurantOwner{},
		&models.Restaurant{},
		&models.Food{},
		&models.Order{},
		&models.OrderLine{},
	))
	return dbh
}

func seedRestaurant(t *testing.T, dbh *gorm.DB) (*models.Restaurant, []models.Food) {
	t.Helper()
	owner := models.RestaurantOwner{Username: "owner", Email: "owner@x.com", PasswordHash: "x"}
	require.NoError(t, dbh.Create(&owner).Error)
	restaurant := models.Restaurant{OwnerID: owner.ID, Name: "Trattoria", Address: "1 Main St"}
	require.NoError(t, dbh.Create(&restaurant).Error)
	foods := []models.Food{
		{RestaurantID: restaurant.ID, Name: "Margherita", Price: 9.99},
		{RestaurantID: restaurant.ID, Name: "Carbonara", Price: 12.50},
	}
	require.NoError(t, dbh.Create(&foods).Error)
	return &restaurant, foods
}

func countRows(t *testing.T, dbh *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, dbh.Model(model).Count(&n).Error)
	return n
}

func ptrU(v uint) *uint       { return &v }
func ptrF(v float64) *float64 { return &v }

func TestCreateOrderSuccess(t *testing.T) {
	dbh := testDB(t)
	restaurant, foods := seedRestaurant(t, dbh)

	id, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items: []LineInput{
			{FoodID: foods[0].ID, Quantity: 2},
			{FoodID: foods[1].ID, Quantity: 1},
		},
		PriceTotal:      ptrF(32.48),
		AdditionalCosts: 3.50,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	var order models.Order
	require.NoError(t, dbh.Preload("Lines").First(&order, id).Error)
	assert.Equal(t, uint(1), order.CustomerID)
	assert.Equal(t, 32.48, order.PriceTotal)
	assert.Equal(t, 3.50, order.AdditionalCosts)
	assert.Len(t, order.Lines, 2)
}

func TestCreateOrderIDsIncrease(t *testing.T) {
	dbh := testDB(t)
	restaurant, foods := seedRestaurant(t, dbh)

	in := CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items:        []LineInput{{FoodID: foods[0].ID, Quantity: 1}},
		PriceTotal:   ptrF(9.99),
	}
	first, err := Create(dbh, 1, in)
	require.NoError(t, err)
	second, err := Create(dbh, 1, in)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestCreateOrderAtomicRollback(t *testing.T) {
	dbh := testDB(t)
	restaurant, foods := seedRestaurant(t, dbh)

	ordersBefore := countRows(t, dbh, &models.Order{})
	linesBefore := countRows(t, dbh, &models.OrderLine{})

	// Second line references a food that does not exist; the whole order,
	// header included, must be rolled back.
	_, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items: []LineInput{
			{FoodID: foods[0].ID, Quantity: 2},
			{FoodID: 99999, Quantity: 1},
		},
		PriceTotal: ptrF(19.98),
	})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.TxAborted, ae.Kind)

	assert.Equal(t, ordersBefore, countRows(t, dbh, &models.Order{}))
	assert.Equal(t, linesBefore, countRows(t, dbh, &models.OrderLine{}))
}

func TestCreateOrderForeignFoodRollsBack(t *testing.T) {
	dbh := testDB(t)
	restaurant, _ := seedRestaurant(t, dbh)

	// A food belonging to a different restaurant counts as nonexistent for
	// this order.
	other := models.Restaurant{OwnerID: 1, Name: "Other", Address: "2 Side St"}
	require.NoError(t, dbh.Create(&other).Error)
	foreign := models.Food{RestaurantID: other.ID, Name: "Sushi", Price: 15}
	require.NoError(t, dbh.Create(&foreign).Error)

	_, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items:        []LineInput{{FoodID: foreign.ID, Quantity: 1}},
		PriceTotal:   ptrF(15),
	})
	require.Error(t, err)
	assert.Zero(t, countRows(t, dbh, &models.Order{}))
	assert.Zero(t, countRows(t, dbh, &models.OrderLine{}))
}

func TestCreateOrderNamesEveryMissingField(t *testing.T) {
	dbh := testDB(t)

	_, err := Create(dbh, 1, CreateInput{})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.Validation, ae.Kind)
	assert.ElementsMatch(t, []string{"restaurant_id", "items", "price_total"}, ae.Fields)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	dbh := testDB(t)
	restaurant, _ := seedRestaurant(t, dbh)

	_, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items:        []LineInput{},
		PriceTotal:   ptrF(0),
	})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.Validation, ae.Kind)
	assert.Equal(t, []string{"items"}, ae.Fields)
	assert.Zero(t, countRows(t, dbh, &models.Order{}))
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	dbh := testDB(t)

	_, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(12345),
		Items:        []LineInput{{FoodID: 1, Quantity: 1}},
		PriceTotal:   ptrF(10),
	})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	dbh := testDB(t)
	restaurant, foods := seedRestaurant(t, dbh)

	_, err := Create(dbh, 1, CreateInput{
		RestaurantID: ptrU(restaurant.ID),
		Items:        []LineInput{{FoodID: foods[0].ID, Quantity: 0}},
		PriceTotal:   ptrF(0),
	})
	require.Error(t, err)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.Validation, ae.Kind)
	assert.Zero(t, countRows(t, dbh, &models.Order{}))
}
