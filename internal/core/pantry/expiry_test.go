package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "a", Name: "cereal", ExpiryDate: "2024-05-11"},
		{ID: "b", Name: "rice", ExpiryDate: "2024-08-01"},
		{ID: "c", Name: "milk", ExpiryDate: "2024-05-13T12:00:00Z"},
		{ID: "d", Name: "bread", ExpiryDate: "2024-05-09"},
		{ID: "e", Name: "beans"},
		{ID: "f", Name: "soup", ExpiryDate: "next week"},
		{Name: "yogurt", ExpiryDate: "2024-05-10"},
	}

	got := ExpiringSoon(items, now)
	require.Len(t, got, 3)
	assert.Equal(t, "cereal", got[0].Name)
	assert.Equal(t, "milk", got[1].Name)
	assert.Equal(t, "yogurt", got[2].Name)
	assert.NotEmpty(t, got[2].ID)
	assert.Empty(t, items[6].ID, "input is not modified")
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now.Add(-time.Hour), now))
	assert.Equal(t, -1, DaysUntil(now.Add(-25*time.Hour), now))
}

func TestParseExpiry(t *testing.T) {
	_, ok := ParseExpiry("2024-05-10")
	assert.True(t, ok)
	_, ok = ParseExpiry("2024-05-10T08:00:00+02:00")
	assert.True(t, ok)
	_, ok = ParseExpiry("")
	assert.False(t, ok)
	_, ok = ParseExpiry("05/10/2024")
	assert.False(t, ok)
}
