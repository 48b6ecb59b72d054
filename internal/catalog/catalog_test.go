package catalog

import (
	"testing"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	menu, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24, menu.Len())

	item, ok := menu.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "Chicken Biryani", item.Name)
	assert.Equal(t, domain.CategoryBiryani, item.Category)
	assert.Equal(t, "240.00", item.Price.StringFixed(2))
	assert.True(t, item.Available)
}

func TestLoadCoversAllCategories(t *testing.T) {
	menu, err := Load()
	require.NoError(t, err)

	for _, category := range domain.Categories() {
		assert.NotEmpty(t, menu.ItemsByCategory(category), "category %s has no items", category)
	}

	assert.Len(t, menu.ItemsByCategory(domain.CategoryBiryani), 4)
}

func TestLookupUnknownID(t *testing.T) {
	menu, err := Load()
	require.NoError(t, err)

	_, ok := menu.Lookup("999")
	assert.False(t, ok)
}

func TestNewRejectsBadItems(t *testing.T) {
	valid := domain.MenuItem{
		ID:       "1",
		Name:     "Chapati",
		Price:    decimal.NewFromInt(12),
		Category: domain.CategoryBreads,
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := New([]domain.MenuItem{valid, valid})
		assert.ErrorContains(t, err, "duplicate menu item id")
	})

	t.Run("missing id", func(t *testing.T) {
		item := valid
		item.ID = ""
		_, err := New([]domain.MenuItem{item})
		assert.ErrorContains(t, err, "has no id")
	})

	t.Run("unknown category", func(t *testing.T) {
		item := valid
		item.Category = "Desserts"
		_, err := New([]domain.MenuItem{item})
		assert.ErrorContains(t, err, "unknown category")
	})

	t.Run("negative price", func(t *testing.T) {
		item := valid
		item.Price = decimal.NewFromInt(-5)
		_, err := New([]domain.MenuItem{item})
		assert.ErrorContains(t, err, "negative price")
	})
}
