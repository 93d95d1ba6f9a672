package model

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&LocationModel{},
		&PropertyTypeModel{},
		&PropertyModel{},
		&PropertyImageModel{},
	))
	return db
}

func TestSlugGeneratedOnceAndStable(t *testing.T) {
	db := newTestDB(t)

	p := PropertyModel{
		PropertyName:        "Villa Luna",
		PropertyDeveloperID: uuid.New(),
	}
	require.NoError(t, db.Create(&p).Error)
	assert.Equal(t, "villa-luna", p.PropertySlug)

	// rename: URL stays put
	p.PropertyName = "Villa Sol"
	require.NoError(t, db.Save(&p).Error)

	var reloaded PropertyModel
	require.NoError(t, db.First(&reloaded, "property_id = ?", p.PropertyID).Error)
	assert.Equal(t, "Villa Sol", reloaded.PropertyName)
	assert.Equal(t, "villa-luna", reloaded.PropertySlug)
}

func TestSlugCollisionGetsSuffix(t *testing.T) {
	db := newTestDB(t)
	dev := uuid.New()

	a := PropertyModel{PropertyName: "Villa Luna", PropertyDeveloperID: dev}
	b := PropertyModel{PropertyName: "Villa Luna", PropertyDeveloperID: dev}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	assert.Equal(t, "villa-luna", a.PropertySlug)
	assert.Equal(t, "villa-luna-2", b.PropertySlug)
	assert.NotEqual(t, a.PropertySlug, b.PropertySlug)
}

func TestDeletingLocationNullsPropertyFK(t *testing.T) {
	db := newTestDB(t)

	loc := LocationModel{LocationName: "Canggu"}
	require.NoError(t, db.Create(&loc).Error)

	p := PropertyModel{
		PropertyName:        "Beachfront Loft",
		PropertyDeveloperID: uuid.New(),
		PropertyLocationID:  &loc.LocationID,
	}
	require.NoError(t, db.Create(&p).Error)

	require.NoError(t, db.Delete(&LocationModel{}, "location_id = ?", loc.LocationID).Error)

	var reloaded PropertyModel
	require.NoError(t, db.First(&reloaded, "property_id = ?", p.PropertyID).Error)
	assert.Nil(t, reloaded.PropertyLocationID, "classifier delete must orphan, not cascade")
}

func TestDeletingPropertyCascadesImages(t *testing.T) {
	db := newTestDB(t)

	p := PropertyModel{PropertyName: "Garden Villa", PropertyDeveloperID: uuid.New()}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&PropertyImageModel{
		PropertyImagePropertyID: p.PropertyID,
		PropertyImageExtURL:     "https://example.com/1.jpg",
	}).Error)

	require.NoError(t, db.Delete(&PropertyModel{}, "property_id = ?", p.PropertyID).Error)

	var count int64
	require.NoError(t, db.Model(&PropertyImageModel{}).
		Where("property_image_property_id = ?", p.PropertyID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestCompletionStatus(t *testing.T) {
	p := PropertyModel{PropertyConstructionStatus: ConstructionCompleted, PropertyCompletionDate: "Q3 2025"}
	assert.Equal(t, "Completed", p.CompletionStatus())

	p = PropertyModel{PropertyConstructionStatus: ConstructionInProgress, PropertyCompletionDate: "Q3 2025"}
	assert.Equal(t, "Q3 2025", p.CompletionStatus())

	p = PropertyModel{PropertyConstructionStatus: ConstructionPlanned}
	assert.Equal(t, "TBC", p.CompletionStatus())
}
