package bank

import (
	"testing"

	"github.com/nidhisakhi/backend/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSortedByEMI(t *testing.T) {
	svc := NewService()

	offers, err := svc.Compare(ProductPersonal, 500000, 36)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	for i := 1; i < len(offers); i++ {
		assert.LessOrEqual(t, offers[i-1].EMI, offers[i].EMI)
	}
	assert.Equal(t, "hdfc", offers[0].BankID)
	assert.Equal(t, 10.25, offers[0].InterestRate)
	assert.Equal(t, 7500.0, offers[0].ProcessingFee)
	assert.True(t, offers[0].WithinLimits)

	want, err := pricing.EMI(500000, 10.25, 36)
	require.NoError(t, err)
	assert.InDelta(t, want, offers[0].EMI, 0.01)
}

func TestCompareOutsideLimits(t *testing.T) {
	svc := NewService()

	offers, err := svc.Compare(ProductPersonal, 60000, 84)
	require.NoError(t, err)

	byBank := map[string]Comparison{}
	for _, o := range offers {
		byBank[o.BankID] = o
	}
	assert.False(t, byBank["sbi"].WithinLimits)
	assert.False(t, byBank["hdfc"].WithinLimits)

	home, err := svc.Compare(ProductHome, 2500000, 360)
	require.NoError(t, err)
	for _, o := range home {
		assert.True(t, o.WithinLimits, o.BankID)
	}
}

func TestFeeAmount(t *testing.T) {
	assert.Equal(t, 4999.0, feeAmount(ProcessingFee{Type: FeeFixed, Value: 4999}, 500000))
	assert.Equal(t, 7500.0, feeAmount(ProcessingFee{Type: FeePercentage, Value: 1.5}, 500000))
}

func TestCompareErrors(t *testing.T) {
	svc := NewService()

	_, err := svc.Compare("boat", 100000, 12)
	assert.ErrorIs(t, err, ErrUnknownProduct)

	_, err = svc.Compare(ProductHome, -1, 12)
	assert.ErrorIs(t, err, pricing.ErrNegativePrincipal)

	_, err = svc.Compare(ProductHome, 100000, 0)
	assert.ErrorIs(t, err, pricing.ErrInvalidTenure)
}

func TestBranchesFilter(t *testing.T) {
	svc := NewService()

	assert.Len(t, svc.Branches(BranchFilter{}), 4)
	assert.Len(t, svc.Branches(BranchFilter{BankID: "HDFC"}), 2)
	assert.Len(t, svc.Branches(BranchFilter{City: " mumbai"}), 4)
	assert.Empty(t, svc.Branches(BranchFilter{BankID: "sbi", City: "Delhi"}))
}

func TestNearestBranches(t *testing.T) {
	svc := NewService()

	// Churchgate station
	got, err := svc.NearestBranches(18.9352, 72.8277, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hdfc-001", got[0].ID)
	assert.LessOrEqual(t, got[0].DistanceKM, got[1].DistanceKM)

	// New Delhi; every branch is in Mumbai and the default limit covers them all.
	all, err := svc.NearestBranches(28.6139, 77.2090, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].DistanceKM, all[i].DistanceKM)
	}

	_, err = svc.NearestBranches(91, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestHaversine(t *testing.T) {
	mumbai := Location{Lat: 19.0760, Lng: 72.8777}
	delhi := Location{Lat: 28.7041, Lng: 77.1025}

	assert.InDelta(t, 1150, Haversine(mumbai, delhi), 15)
	assert.Zero(t, Haversine(mumbai, mumbai))
}
