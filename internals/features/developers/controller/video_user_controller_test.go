package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"baliestate_backend/internals/features/developers/model"
)

func newVideoApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.DeveloperCategoryModel{},
		&model.DeveloperModel{},
		&model.VideoModel{},
	))

	app := fiber.New()
	ctrl := NewVideoUserController(db)
	app.Post("/videos/:id/view", ctrl.RegisterView)
	return app, db
}

func TestRegisterViewIncrementsCounter(t *testing.T) {
	app, db := newVideoApp(t)

	video := model.VideoModel{
		VideoTitle:      "Walkthrough",
		VideoYoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
	}
	require.NoError(t, db.Create(&video).Error)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/videos/"+video.VideoID.String()+"/view", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	var reloaded model.VideoModel
	require.NoError(t, db.First(&reloaded, "video_id = ?", video.VideoID).Error)
	assert.Equal(t, int64(3), reloaded.VideoViews)
}

func TestRegisterViewUnknownVideoIs404(t *testing.T) {
	app, _ := newVideoApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/videos/"+uuid.NewString()+"/view", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
