package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"baliestate_backend/internals/features/properties/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.LocationModel{},
		&model.PropertyTypeModel{},
		&model.PropertyModel{},
		&model.PropertyImageModel{},
	))

	app := fiber.New()
	ctrl := NewPropertyUserController(db)
	app.Get("/properties", ctrl.ListProperties)
	app.Get("/properties/:slug", ctrl.GetPropertyBySlug)
	return app, db
}

type listResponse struct {
	Data struct {
		Properties []struct {
			PropertyName string `json:"property_name"`
			PropertySlug string `json:"property_slug"`
		} `json:"properties"`
		Pagination struct {
			Page       int   `json:"page"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	} `json:"data"`
}

func getList(t *testing.T, app *fiber.App, query string) listResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/properties"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out listResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func intp(n int) *int { return &n }

func seedProperty(t *testing.T, db *gorm.DB, name string, rooms *int, loc *model.LocationModel, active bool) model.PropertyModel {
	t.Helper()
	p := model.PropertyModel{
		PropertyName:        name,
		PropertyDeveloperID: uuid.New(),
		PropertyRooms:       rooms,
		PropertyIsActive:    active,
	}
	if loc != nil {
		p.PropertyLocationID = &loc.LocationID
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestListFiltersByLocationSlug(t *testing.T) {
	app, db := newTestApp(t)

	canggu := model.LocationModel{LocationName: "Canggu"}
	ubud := model.LocationModel{LocationName: "Ubud"}
	require.NoError(t, db.Create(&canggu).Error)
	require.NoError(t, db.Create(&ubud).Error)

	seedProperty(t, db, "Canggu Villa", nil, &canggu, true)
	seedProperty(t, db, "Ubud Retreat", nil, &ubud, true)
	seedProperty(t, db, "Homeless Loft", nil, nil, true)

	out := getList(t, app, "?location=canggu")
	require.Len(t, out.Data.Properties, 1)
	assert.Equal(t, "Canggu Villa", out.Data.Properties[0].PropertyName)
	assert.Equal(t, int64(1), out.Data.Pagination.Total)
}

func TestListHidesInactive(t *testing.T) {
	app, db := newTestApp(t)

	seedProperty(t, db, "Visible Villa", nil, nil, true)
	seedProperty(t, db, "Hidden Villa", nil, nil, false)

	out := getList(t, app, "")
	require.Len(t, out.Data.Properties, 1)
	assert.Equal(t, "Visible Villa", out.Data.Properties[0].PropertyName)
}

func TestListRoomsSentinel(t *testing.T) {
	app, db := newTestApp(t)

	seedProperty(t, db, "Studio", intp(1), nil, true)
	seedProperty(t, db, "Two Beds", intp(2), nil, true)
	seedProperty(t, db, "Three Beds", intp(3), nil, true)
	seedProperty(t, db, "Five Beds", intp(5), nil, true)

	// exact match for 1 and 2
	out := getList(t, app, "?rooms=2")
	require.Len(t, out.Data.Properties, 1)
	assert.Equal(t, "Two Beds", out.Data.Properties[0].PropertyName)

	// "3" means three or more
	out = getList(t, app, "?rooms=3")
	assert.Equal(t, int64(2), out.Data.Pagination.Total)

	// exact above the sentinel
	out = getList(t, app, "?rooms=5")
	require.Len(t, out.Data.Properties, 1)
	assert.Equal(t, "Five Beds", out.Data.Properties[0].PropertyName)

	// garbage is ignored, not an error
	out = getList(t, app, "?rooms=lots")
	assert.Equal(t, int64(4), out.Data.Pagination.Total)
}

func TestListNameSearchIsCaseInsensitive(t *testing.T) {
	app, db := newTestApp(t)

	seedProperty(t, db, "Sunset Paradise", nil, nil, true)
	seedProperty(t, db, "Ocean Breeze", nil, nil, true)

	out := getList(t, app, "?q=PARADISE")
	require.Len(t, out.Data.Properties, 1)
	assert.Equal(t, "Sunset Paradise", out.Data.Properties[0].PropertyName)
}

func TestListClampsOutOfRangePage(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 3; i++ {
		seedProperty(t, db, fmt.Sprintf("Villa %d", i), nil, nil, true)
	}

	// 3 items fit on page 1; page 999 serves page 1, never an empty page
	out := getList(t, app, "?page=999")
	assert.Equal(t, 1, out.Data.Pagination.Page)
	assert.Len(t, out.Data.Properties, 3)
	assert.Equal(t, int64(3), out.Data.Pagination.Total)
}

func TestDetailReturns404ForInactive(t *testing.T) {
	app, db := newTestApp(t)

	p := seedProperty(t, db, "Ghost Villa", nil, nil, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/properties/"+p.PropertySlug, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDetailReturnsSimilarFromSameLocation(t *testing.T) {
	app, db := newTestApp(t)

	loc := model.LocationModel{LocationName: "Seminyak"}
	require.NoError(t, db.Create(&loc).Error)

	main := seedProperty(t, db, "Main Villa", nil, &loc, true)
	seedProperty(t, db, "Neighbour A", nil, &loc, true)
	seedProperty(t, db, "Neighbour B", nil, &loc, true)
	seedProperty(t, db, "Far Away", nil, nil, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/properties/"+main.PropertySlug, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Data struct {
			Property struct {
				PropertySlug string `json:"property_slug"`
			} `json:"property"`
			Similar []struct {
				PropertyName string `json:"property_name"`
			} `json:"similar_properties"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, main.PropertySlug, out.Data.Property.PropertySlug)
	assert.Len(t, out.Data.Similar, 2)
}
