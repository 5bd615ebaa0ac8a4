package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AI-TRAVEL-PLANNER_BACK-END/internal/models"
)

func TestActivitiesForKnownStyles(t *testing.T) {
	c := NewCatalog()

	for _, style := range []string{
		models.StyleCuisine, models.StyleCulture, models.StyleNature,
		models.StyleShopping, models.StyleLeisure,
	} {
		assert.Len(t, c.ActivitiesFor(style), 5, "style %s", style)
	}
}

func TestActivitiesForUnknownStyle(t *testing.T) {
	c := NewCatalog()
	assert.Nil(t, c.ActivitiesFor("潜水"))
}

func TestAllActivitiesFlattensEveryPool(t *testing.T) {
	c := NewCatalog()
	all := c.AllActivities()

	assert.Len(t, all, 25)
	// Fixed style order: cuisine entries first, leisure entries last.
	assert.Equal(t, "当地特色餐厅", all[0])
	assert.Equal(t, "高尔夫", all[len(all)-1])
}

func TestTemplatesForMatchesCityBySubstring(t *testing.T) {
	c := NewCatalog()

	tpl, matched := c.TemplatesFor("中国上海市", 1)
	require.True(t, matched)
	assert.Equal(t, "上海博物馆", tpl[0].Title)

	tpl, matched = c.TemplatesFor("北京", 1)
	require.True(t, matched)
	assert.Equal(t, "天安门广场", tpl[0].Title)
}

func TestTemplatesForClampsMissingDays(t *testing.T) {
	c := NewCatalog()

	day3, _ := c.TemplatesFor("上海", 3)
	day9, matched := c.TemplatesFor("上海", 9)
	require.True(t, matched)
	assert.Equal(t, day3, day9)

	day0, _ := c.TemplatesFor("上海", 0)
	day1, _ := c.TemplatesFor("上海", 1)
	assert.Equal(t, day1, day0)
}

func TestTemplatesForUnmatchedDestinationFallsBack(t *testing.T) {
	c := NewCatalog()

	tpl, matched := c.TemplatesFor("巴黎", 2)
	assert.False(t, matched)
	// Default set is the Shanghai day-1 plan.
	assert.Equal(t, "上海博物馆", tpl[0].Title)
}

func TestCityCenter(t *testing.T) {
	c := NewCatalog()

	loc, coords, ok := c.CityCenter("上海")
	require.True(t, ok)
	assert.NotEmpty(t, loc)
	assert.InDelta(t, 121.472644, coords[0], 1e-9)

	_, _, ok = c.CityCenter("伦敦")
	assert.False(t, ok)
}
