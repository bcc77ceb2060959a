package catalog

import (
	"sort"
	"strings"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

// Sort keys accepted by Visible. Anything else keeps the input order.
const (
	SortName      = "name"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortBookings  = "bookings"
)

// AvailabilityAll is the filter sentinel that matches every availability
// state, including booked entities which are otherwise unreachable.
const AvailabilityAll = "all"

type Query struct {
	Search       string
	Category     string
	Availability string
	SortBy       string
}

// Visible maps (catalog, query) to the ordered visible subset. It is a
// pure function: the input slice is never mutated and equal inputs yield
// equal output. Ties are stable and preserve catalog order.
func Visible(catalog []*domain.Celebrity, q Query) []*domain.Celebrity {
	res := make([]*domain.Celebrity, 0, len(catalog))
	for _, c := range catalog {
		if matchesSearch(c, q.Search) && matchesCategory(c, q.Category) && matchesAvailability(c, q.Availability) {
			res = append(res, c)
		}
	}

	switch q.SortBy {
	case SortName:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	case SortRating:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Rating > res[j].Rating })
	case SortPriceLow:
		sort.SliceStable(res, func(i, j int) bool { return res[i].HourlyRate < res[j].HourlyRate })
	case SortPriceHigh:
		sort.SliceStable(res, func(i, j int) bool { return res[i].HourlyRate > res[j].HourlyRate })
	case SortBookings:
		sort.SliceStable(res, func(i, j int) bool { return res[i].TotalBookings > res[j].TotalBookings })
	}

	return res
}

func matchesSearch(c *domain.Celebrity, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.Category), term)
}

func matchesCategory(c *domain.Celebrity, category string) bool {
	return category == "" || category == domain.CategoryAll || c.Category == category
}

func matchesAvailability(c *domain.Celebrity, filter string) bool {
	switch filter {
	case "", AvailabilityAll:
		return true
	case string(domain.AvailabilityAvailable):
		return c.Availability == domain.AvailabilityAvailable
	case string(domain.AvailabilityBusy):
		return c.Availability == domain.AvailabilityBusy
	default:
		// booked is deliberately not selectable; a booked entity is only
		// visible under "all"
		return false
	}
}
