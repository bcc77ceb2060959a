package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

func testCatalog() []*domain.Celebrity {
	return []*domain.Celebrity{
		{ID: "1", Name: "Sarah Johnson", Category: "Actress", Description: "Award-winning actress", HourlyRate: 500000, Availability: domain.AvailabilityAvailable, Rating: 4.9, TotalBookings: 127},
		{ID: "2", Name: "Marcus Williams", Category: "Musician", Description: "Grammy-nominated R&B artist", HourlyRate: 350000, Availability: domain.AvailabilityAvailable, Rating: 4.8, TotalBookings: 89},
		{ID: "3", Name: "Elena Rodriguez", Category: "Model", Description: "International fashion model", HourlyRate: 250000, Availability: domain.AvailabilityBusy, Rating: 4.7, TotalBookings: 203},
		{ID: "4", Name: "Robert Taylor", Category: "Comedian", Description: "Stand-up comedian and TV personality", HourlyRate: 220000, Availability: domain.AvailabilityBooked, Rating: 4.8, TotalBookings: 98},
	}
}

func TestVisible_EmptyQueryMatchesAll(t *testing.T) {
	cat := testCatalog()

	res := Visible(cat, Query{})

	assert.Len(t, res, len(cat))
}

func TestVisible_SearchIsCaseInsensitive(t *testing.T) {
	cat := testCatalog()

	byName := Visible(cat, Query{Search: "sarah"})
	byDescription := Visible(cat, Query{Search: "GRAMMY"})
	byCategory := Visible(cat, Query{Search: "model"})

	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "2", byDescription[0].ID)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "3", byCategory[0].ID)
}

func TestVisible_CategoryFilter(t *testing.T) {
	cat := testCatalog()

	all := Visible(cat, Query{Category: domain.CategoryAll})
	musicians := Visible(cat, Query{Category: "Musician"})

	assert.Len(t, all, len(cat))
	require.Len(t, musicians, 1)
	assert.Equal(t, "Marcus Williams", musicians[0].Name)
}

func TestVisible_AvailabilityFilter(t *testing.T) {
	cat := testCatalog()

	available := Visible(cat, Query{Availability: "available"})
	busy := Visible(cat, Query{Availability: "busy"})
	all := Visible(cat, Query{Availability: AvailabilityAll})

	assert.Len(t, available, 2)
	require.Len(t, busy, 1)
	assert.Equal(t, "3", busy[0].ID)
	// booked entities are visible only under "all"
	assert.Len(t, all, 4)
	assert.Empty(t, Visible(cat, Query{Availability: "booked"}))
}

func TestVisible_SortKeys(t *testing.T) {
	cat := testCatalog()

	byName := Visible(cat, Query{SortBy: SortName})
	names := make([]string, len(byName))
	for i, c := range byName {
		names[i] = c.Name
	}
	assert.True(t, sort.StringsAreSorted(names))

	byPriceLow := Visible(cat, Query{SortBy: SortPriceLow})
	assert.Equal(t, "4", byPriceLow[0].ID)
	assert.Equal(t, "1", byPriceLow[len(byPriceLow)-1].ID)

	byPriceHigh := Visible(cat, Query{SortBy: SortPriceHigh})
	assert.Equal(t, "1", byPriceHigh[0].ID)

	byRating := Visible(cat, Query{SortBy: SortRating})
	assert.Equal(t, "1", byRating[0].ID)

	byBookings := Visible(cat, Query{SortBy: SortBookings})
	assert.Equal(t, "3", byBookings[0].ID)
}

func TestVisible_RatingTiesAreStable(t *testing.T) {
	cat := testCatalog()

	byRating := Visible(cat, Query{SortBy: SortRating})

	// 2 and 4 share a 4.8 rating; catalog order decides
	require.Len(t, byRating, 4)
	assert.Equal(t, "2", byRating[1].ID)
	assert.Equal(t, "4", byRating[2].ID)
}

func TestVisible_Idempotent(t *testing.T) {
	cat := testCatalog()
	q := Query{Search: "a", Availability: "available", SortBy: SortPriceHigh}

	first := Visible(cat, q)
	second := Visible(cat, q)

	assert.Equal(t, first, second)
}

func TestVisible_SubsetAndNoMutation(t *testing.T) {
	cat := testCatalog()
	original := make([]*domain.Celebrity, len(cat))
	copy(original, cat)

	res := Visible(cat, Query{Search: "o", SortBy: SortName})

	assert.LessOrEqual(t, len(res), len(cat))
	for _, c := range res {
		assert.Contains(t, cat, c)
	}
	assert.Equal(t, original, cat)
}
