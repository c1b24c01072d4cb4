package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddUnknownProduct(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	err := svc.Add(s, "nope", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, svc.View(s).Items)
}

func TestCartService_AddEmitsNotice(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	require.NoError(t, svc.Add(s, "1", 1))

	notices := s.DrainNotices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Stealth Pro added to cart!", notices[0].Message)
	assert.Equal(t, NoticeSuccess, notices[0].Kind)
	assert.Empty(t, s.DrainNotices(), "drain must empty the queue")
}

func TestCartService_MergeLaw(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	require.NoError(t, svc.Add(s, "1", 2))
	require.NoError(t, svc.Add(s, "1", 3))

	view := svc.View(s)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 5, view.ItemCount)
}

func TestCartService_RemoveAbsentEmitsNothing(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	svc.Remove(s, "ghost")
	assert.Empty(t, s.DrainNotices())
}

func TestCartService_ViewTotals(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	// [Marble Lamp $10 x2, Silk Scarf $5 x1] -> 25.00, count 3
	require.NoError(t, svc.Add(s, "3", 2))
	require.NoError(t, svc.Add(s, "2", 1))

	view := svc.View(s)
	assert.Equal(t, "25.00", view.Total.StringFixed(2))
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartService_UpdateQuantityFloor(t *testing.T) {
	svc := NewCartService(newMockCatalog(), testLogger())
	s := loggedInSession()

	require.NoError(t, svc.Add(s, "1", 3))
	svc.UpdateQuantity(s, "1", -100)

	view := svc.View(s)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}
