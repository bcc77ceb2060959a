package pricing

import (
	"fmt"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

type PackageID string

const (
	PackageBasic    PackageID = "basic"
	PackageStandard PackageID = "standard"
	PackagePremium  PackageID = "premium"
)

// feePercent is the fixed platform fee added on top of the package price.
const feePercent = 5

type Package struct {
	ID       PackageID `json:"id"`
	Name     string    `json:"name"`
	Duration string    `json:"duration"`
	Price    domain.Money `json:"price"`
	Features []string  `json:"features"`
}

type tier struct {
	name     string
	duration string
	// multiplier over the hourly rate, in percent to keep the math integral
	ratePercent int64
	features    []string
}

var tiers = map[PackageID]tier{
	PackageBasic: {
		name:        "Basic Meet & Greet",
		duration:    "30 minutes",
		ratePercent: 50,
		features:    []string{"Personal meet & greet", "Photo opportunity", "Autograph signing"},
	},
	PackageStandard: {
		name:        "Standard Appearance",
		duration:    "1 hour",
		ratePercent: 100,
		features:    []string{"Personal appearance", "Meet & greet", "Photos & autographs", "Brief Q&A session"},
	},
	PackagePremium: {
		name:        "Premium Event",
		duration:    "2 hours",
		ratePercent: 180,
		features:    []string{"Extended appearance", "Interactive session", "Professional photos", "Social media mentions", "Custom content"},
	},
}

// PackagePrice derives the package price from the hourly rate. The caller
// contract only admits the three known package ids.
func PackagePrice(rate domain.Money, id PackageID) (domain.Money, error) {
	t, ok := tiers[id]
	if !ok {
		return 0, fmt.Errorf("%w: unknown package %q", domain.ErrValidation, id)
	}
	return domain.Money(int64(rate) * t.ratePercent / 100), nil
}

// Total adds the fixed platform fee to the package price.
func Total(amount domain.Money) domain.Money {
	return amount + amount*feePercent/100
}

// PackageFor resolves a fully priced package for a celebrity.
func PackageFor(c *domain.Celebrity, id PackageID) (Package, error) {
	price, err := PackagePrice(c.HourlyRate, id)
	if err != nil {
		return Package{}, err
	}
	t := tiers[id]
	return Package{
		ID:       id,
		Name:     t.name,
		Duration: t.duration,
		Price:    price,
		Features: t.features,
	}, nil
}

// Packages lists the three tiers for a celebrity in ascending price order.
func Packages(c *domain.Celebrity) []Package {
	res := make([]Package, 0, len(tiers))
	for _, id := range []PackageID{PackageBasic, PackageStandard, PackagePremium} {
		p, _ := PackageFor(c, id)
		res = append(res, p)
	}
	return res
}

// Valid reports whether id names one of the three tiers.
func Valid(id PackageID) bool {
	_, ok := tiers[id]
	return ok
}
