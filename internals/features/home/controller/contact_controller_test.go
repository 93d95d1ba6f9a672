package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"baliestate_backend/internals/features/home/model"
)

func newContactApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ContactRequestModel{}))

	app := fiber.New()
	ctrl := NewContactController(db)
	app.Post("/contact", ctrl.SubmitContact)
	return app, db
}

func postForm(t *testing.T, app *fiber.App, form url.Values, referer string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if referer != "" {
		req.Header.Set(fiber.HeaderReferer, referer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSubmitContactCreatesLead(t *testing.T) {
	app, db := newContactApp(t)

	resp := postForm(t, app, url.Values{
		"name":    {"Ana"},
		"phone":   {"+62 812 000"},
		"message": {"Interested in the Canggu villa"},
	}, "https://site.example/properties/canggu-villa")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://site.example/properties/canggu-villa", resp.Header.Get(fiber.HeaderLocation))

	var leads []model.ContactRequestModel
	require.NoError(t, db.Find(&leads).Error)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ana", leads[0].ContactRequestName)
	assert.False(t, leads[0].ContactRequestIsProcessed)
	assert.False(t, leads[0].ContactRequestCreatedAt.IsZero())
}

func TestSubmitContactEmptyNameIsSilentNoOp(t *testing.T) {
	app, db := newContactApp(t)

	resp := postForm(t, app, url.Values{
		"name":    {"   "},
		"message": {"bot probe"},
	}, "https://site.example/")

	// same redirect as success, nothing stored
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://site.example/", resp.Header.Get(fiber.HeaderLocation))

	var count int64
	require.NoError(t, db.Model(&model.ContactRequestModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitContactFallsBackToRootWithoutReferer(t *testing.T) {
	app, _ := newContactApp(t)

	resp := postForm(t, app, url.Values{"name": {"Ana"}}, "")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestSubmitContactSetsFlashCookie(t *testing.T) {
	app, _ := newContactApp(t)

	resp := postForm(t, app, url.Values{"name": {"Ana"}}, "")
	cookie := resp.Header.Get(fiber.HeaderSetCookie)
	assert.Contains(t, cookie, "flash_message=")
}

func TestSubmitContactTrimsFields(t *testing.T) {
	app, db := newContactApp(t)

	postForm(t, app, url.Values{
		"name":  {"  Ana  "},
		"email": {" ana@example.com "},
	}, "")

	var lead model.ContactRequestModel
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "Ana", lead.ContactRequestName)
	assert.Equal(t, "ana@example.com", lead.ContactRequestEmail)
}
