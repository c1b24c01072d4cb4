package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ProductLookup(t *testing.T) {
	s := NewStore()

	p, ok := s.ProductByID("1")
	require.True(t, ok)
	assert.Equal(t, "Stealth Pro Wireless Headphones", p.Name)
	assert.Equal(t, "299.99", p.Price.StringFixed(2))

	_, ok = s.ProductByID("nope")
	assert.False(t, ok)
}

func TestStore_SearchProducts(t *testing.T) {
	s := NewStore()

	assert.Len(t, s.SearchProducts("", ""), 3)

	byText := s.SearchProducts("headphones", "")
	require.Len(t, byText, 1)
	assert.Equal(t, "1", byText[0].ID)

	byCategory := s.SearchProducts("", "Accessories")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "2", byCategory[0].ID)

	// description text matches too
	byDesc := s.SearchProducts("lumbar", "")
	require.Len(t, byDesc, 1)
	assert.Equal(t, "3", byDesc[0].ID)

	assert.Empty(t, s.SearchProducts("headphones", "Accessories"))
}

func TestStore_FeedNewestFirst(t *testing.T) {
	s := NewStore()

	feed := s.Feed()
	require.Len(t, feed, 2)
	assert.Equal(t, "sp1", feed[0].ID)
	assert.True(t, feed[0].Timestamp.After(feed[1].Timestamp))
}

func TestStore_CopiesAreIsolated(t *testing.T) {
	s := NewStore()

	products := s.Products()
	products[0].Name = "mutated"
	fresh, _ := s.ProductByID(products[0].ID)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestStore_Collections(t *testing.T) {
	s := NewStore()

	assert.Len(t, s.Creators(), 2)
	assert.Len(t, s.Leaderboard(), 5)
	assert.Len(t, s.Contacts(), 3)
	assert.Len(t, s.Notifications(), 1)
	assert.Len(t, s.OrderHistory(), 1)

	_, ok := s.VendorByID("v1")
	assert.True(t, ok)
	c, ok := s.ContactByID("c1")
	require.True(t, ok)
	assert.Equal(t, "LUXE Concierge", c.Name)

	u := s.DemoUser()
	assert.Equal(t, "LUX-ALEX-2024", u.ReferralCode)
	assert.Equal(t, "145.50", u.Balance.StringFixed(2))
}
