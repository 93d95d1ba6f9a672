package helper

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSlugDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE things (thing_slug varchar(160) UNIQUE)`).Error)
	return db
}

var thingOpts = SlugOptions{Table: "things", SlugColumn: "thing_slug", DefaultBase: "thing"}

func TestGenerateSlugNormalization(t *testing.T) {
	cases := map[string]string{
		"Villa Luna":            "villa-luna",
		"  Villa  Luna  ":       "villa-luna",
		"Villa --- Luna!!!":     "villa-luna",
		"ÜBER Residence №7":     "über-residence-7",
		"...":                   "",
		"":                      "",
		"Ocean-View (2nd line)": "ocean-view-2nd-line",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), in)
	}
}

func TestGenerateUniqueSlugSuffixes(t *testing.T) {
	db := newSlugDB(t)

	first, err := GenerateUniqueSlug(db, thingOpts, "Villa Luna")
	require.NoError(t, err)
	assert.Equal(t, "villa-luna", first)
	require.NoError(t, db.Exec(`INSERT INTO things VALUES (?)`, first).Error)

	second, err := GenerateUniqueSlug(db, thingOpts, "Villa Luna")
	require.NoError(t, err)
	assert.Equal(t, "villa-luna-2", second)
	require.NoError(t, db.Exec(`INSERT INTO things VALUES (?)`, second).Error)

	third, err := GenerateUniqueSlug(db, thingOpts, "Villa Luna")
	require.NoError(t, err)
	assert.Equal(t, "villa-luna-3", third)
}

func TestGenerateUniqueSlugCaseInsensitive(t *testing.T) {
	db := newSlugDB(t)
	require.NoError(t, db.Exec(`INSERT INTO things VALUES ('villa-luna')`).Error)

	slug, err := GenerateUniqueSlug(db, thingOpts, "VILLA LUNA")
	require.NoError(t, err)
	assert.Equal(t, "villa-luna-2", slug)
}

func TestGenerateUniqueSlugEmptyBase(t *testing.T) {
	db := newSlugDB(t)

	slug, err := GenerateUniqueSlug(db, thingOpts, "   ")
	require.NoError(t, err)
	assert.Equal(t, "thing", slug)

	slug, err = GenerateUniqueSlug(db, thingOpts, "!!!")
	require.NoError(t, err)
	assert.Equal(t, "thing", slug)
}

func TestGenerateUniqueSlugRespectsMaxLen(t *testing.T) {
	db := newSlugDB(t)
	opts := thingOpts
	opts.MaxLen = 12

	long := strings.Repeat("a", 40)
	slug, err := GenerateUniqueSlug(db, opts, long)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slug), 12)
	require.NoError(t, db.Exec(`INSERT INTO things VALUES (?)`, slug).Error)

	// the suffixed candidate has to fit too
	slug2, err := GenerateUniqueSlug(db, opts, long)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slug2), 12)
	assert.True(t, strings.HasSuffix(slug2, "-2"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "properties_property_slug_key"`)))
	assert.True(t, IsUniqueViolation(fmt.Errorf("UNIQUE constraint failed: things.thing_slug")))
}
