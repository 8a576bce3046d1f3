package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrGetCoatingReusesExistingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "coatings"`).
		WillReturnRows(sqlmock.NewRows([]string{"coating_id", "colour", "hex_code", "type"}).
			AddRow(3, "midnight blue", "#191970", "lacquer"))

	coating, err := createOrGetCoating(db, coatingInput{
		Colour:  "midnight blue",
		HexCode: "#191970",
		Type:    "lacquer",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), coating.CoatingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrGetCoatingInsertsWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "coatings"`).
		WillReturnRows(sqlmock.NewRows([]string{"coating_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "coatings"`).
		WillReturnRows(sqlmock.NewRows([]string{"coating_id"}).AddRow(7))
	mock.ExpectCommit()

	coating, err := createOrGetCoating(db, coatingInput{Colour: "vermillion", Type: "urushi"})
	require.NoError(t, err)

	assert.Equal(t, uint(7), coating.CoatingID)
	assert.Equal(t, "vermillion", coating.Colour)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigureCoatingRequiresColour(t *testing.T) {
	db, mock := newMockDB(t)
	controller := NewConfiguratorController(db)

	app := fiber.New()
	app.Post("/configure/coating", controller.ConfigureCoating)

	req := httptest.NewRequest(fiber.MethodPost, "/configure/coating",
		strings.NewReader(`{"hex_code":"#ffffff"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
