package model

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSettingsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&SiteSettingModel{}))
	return db
}

func TestGetSiteSettingsCreatesDefaultsOnce(t *testing.T) {
	db := newSettingsDB(t)

	first, err := GetSiteSettings(db)
	require.NoError(t, err)
	assert.Equal(t, 1, first.SiteSettingID)
	assert.Equal(t, "Baliestate", first.SiteSettingSiteName)

	// repeated access returns the same row, not a new one
	for i := 0; i < 5; i++ {
		again, err := GetSiteSettings(db)
		require.NoError(t, err)
		assert.Equal(t, first.SiteSettingID, again.SiteSettingID)
	}

	var count int64
	require.NoError(t, db.Model(&SiteSettingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetSiteSettingsKeepsEdits(t *testing.T) {
	db := newSettingsDB(t)

	settings, err := GetSiteSettings(db)
	require.NoError(t, err)

	settings.SiteSettingSiteName = "Bali Estate Hub"
	settings.SiteSettingEmail = "hello@baliestate.example"
	require.NoError(t, db.Save(&settings).Error)

	reloaded, err := GetSiteSettings(db)
	require.NoError(t, err)
	assert.Equal(t, "Bali Estate Hub", reloaded.SiteSettingSiteName)
	assert.Equal(t, "hello@baliestate.example", reloaded.SiteSettingEmail)

	var count int64
	require.NoError(t, db.Model(&SiteSettingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBeforeSavePinsPrimaryKey(t *testing.T) {
	db := newSettingsDB(t)

	_, err := GetSiteSettings(db)
	require.NoError(t, err)

	// even a write aimed at another pk lands on the singleton
	rogue := SiteSettingModel{SiteSettingID: 42, SiteSettingSiteName: "Rogue"}
	require.NoError(t, db.Save(&rogue).Error)
	assert.Equal(t, 1, rogue.SiteSettingID)

	var count int64
	require.NoError(t, db.Model(&SiteSettingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	reloaded, err := GetSiteSettings(db)
	require.NoError(t, err)
	assert.Equal(t, "Rogue", reloaded.SiteSettingSiteName)
}
