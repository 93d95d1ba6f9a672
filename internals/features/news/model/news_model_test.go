package model

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newNewsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&NewsCategoryModel{}, &NewsPostModel{}))
	return db
}

func TestTagsList(t *testing.T) {
	p := NewsPostModel{NewsPostTags: "bali, investment ,villas"}
	assert.Equal(t, []string{"bali", "investment", "villas"}, p.TagsList())

	p = NewsPostModel{NewsPostTags: ""}
	assert.Nil(t, p.TagsList())

	p = NewsPostModel{NewsPostTags: " , ,, "}
	assert.Empty(t, p.TagsList())
}

func TestPostSlugFromTitle(t *testing.T) {
	db := newNewsDB(t)

	p := NewsPostModel{NewsPostTitle: "Bali Market Report: Q3"}
	require.NoError(t, db.Create(&p).Error)
	assert.Equal(t, "bali-market-report-q3", p.NewsPostSlug)

	// duplicate titles still get distinct URLs
	p2 := NewsPostModel{NewsPostTitle: "Bali Market Report: Q3"}
	require.NoError(t, db.Create(&p2).Error)
	assert.Equal(t, "bali-market-report-q3-2", p2.NewsPostSlug)
}

func TestPublishedScopeHidesDrafts(t *testing.T) {
	db := newNewsDB(t)

	require.NoError(t, db.Create(&NewsPostModel{NewsPostTitle: "Draft", NewsPostStatus: NewsStatusDraft}).Error)
	require.NoError(t, db.Create(&NewsPostModel{NewsPostTitle: "Live", NewsPostStatus: NewsStatusPublished}).Error)

	var posts []NewsPostModel
	require.NoError(t, db.Scopes(ScopePublishedPosts).Find(&posts).Error)
	require.Len(t, posts, 1)
	assert.Equal(t, "Live", posts[0].NewsPostTitle)
}
