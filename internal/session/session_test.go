package session

import (
	"testing"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager()

	item := domain.MenuItem{ID: "1", Name: "Chapati", Price: decimal.NewFromInt(12)}
	m.Cart("a").Add(item)

	assert.Equal(t, 1, m.Cart("a").ItemCount())
	assert.Equal(t, 0, m.Cart("b").ItemCount())

	// same session id returns the same cart
	assert.Same(t, m.Cart("a"), m.Cart("a"))
}

func TestManagerDrop(t *testing.T) {
	m := NewManager()

	item := domain.MenuItem{ID: "1", Name: "Chapati", Price: decimal.NewFromInt(12)}
	m.Cart("a").Add(item)
	m.Drop("a")

	assert.Equal(t, 0, m.Cart("a").ItemCount())
}
