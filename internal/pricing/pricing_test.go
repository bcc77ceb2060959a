package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

func TestPackagePrice_Multipliers(t *testing.T) {
	rate := domain.Money(500000) // $5000.00/hour

	basic, err := PackagePrice(rate, PackageBasic)
	require.NoError(t, err)
	standard, err := PackagePrice(rate, PackageStandard)
	require.NoError(t, err)
	premium, err := PackagePrice(rate, PackagePremium)
	require.NoError(t, err)

	assert.Equal(t, domain.Money(250000), basic)
	assert.Equal(t, domain.Money(500000), standard)
	assert.Equal(t, domain.Money(900000), premium)
}

func TestPackagePrice_Ordering(t *testing.T) {
	for _, rate := range []domain.Money{100, 150000, 500000, 999999} {
		basic, _ := PackagePrice(rate, PackageBasic)
		standard, _ := PackagePrice(rate, PackageStandard)
		premium, _ := PackagePrice(rate, PackagePremium)

		assert.Less(t, basic, standard, "rate %d", rate)
		assert.Less(t, standard, premium, "rate %d", rate)
	}
}

func TestPackagePrice_UnknownPackage(t *testing.T) {
	_, err := PackagePrice(500000, "vip")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTotal_PlatformFee(t *testing.T) {
	// $5000 standard package -> $5250.00 total
	assert.Equal(t, domain.Money(525000), Total(500000))
	assert.Equal(t, domain.Money(0), Total(0))
	assert.Equal(t, domain.Money(105), Total(100))
}

func TestTotal_Monotonic(t *testing.T) {
	prev := Total(0)
	for _, amount := range []domain.Money{1, 100, 2500, 500000, 10000000} {
		cur := Total(amount)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestPackages_AllTiers(t *testing.T) {
	c := &domain.Celebrity{ID: "c1", Name: "Sarah Johnson", HourlyRate: 500000}

	pkgs := Packages(c)

	require.Len(t, pkgs, 3)
	assert.Equal(t, PackageBasic, pkgs[0].ID)
	assert.Equal(t, PackageStandard, pkgs[1].ID)
	assert.Equal(t, PackagePremium, pkgs[2].ID)
	assert.Equal(t, "Standard Appearance", pkgs[1].Name)
	assert.Equal(t, "1 hour", pkgs[1].Duration)
	assert.NotEmpty(t, pkgs[2].Features)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(PackageBasic))
	assert.True(t, Valid(PackageStandard))
	assert.True(t, Valid(PackagePremium))
	assert.False(t, Valid("vip"))
	assert.False(t, Valid(""))
}
