package bank

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/nidhisakhi/backend/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

const (
	earthRadiusKM       = 6371.0
	DefaultNearestLimit = 5
)

var (
	ErrUnknownProduct  = errors.New("unknown loan product")
	ErrInvalidLocation = errors.New("invalid coordinates")
)

type Service struct {
	banks []Bank
}

func NewService() *Service {
	return &Service{banks: defaultBanks()}
}

func (s *Service) List() []Bank {
	return s.banks
}

func (s *Service) Get(id string) (Bank, bool) {
	for _, b := range s.banks {
		if b.ID == id {
			return b, true
		}
	}
	return Bank{}, false
}

// Compare prices the request at every bank offering the product, using each
// bank's lowest advertised rate. Offers come back cheapest EMI first.
func (s *Service) Compare(product Product, principal float64, tenureMonths int) ([]Comparison, error) {
	if !product.Valid() {
		return nil, ErrUnknownProduct
	}

	out := make([]Comparison, 0, len(s.banks))
	for _, b := range s.banks {
		p, ok := b.Loans[product]
		if !ok {
			continue
		}
		res, err := pricing.Amortize(principal, p.InterestRange.Min, tenureMonths)
		if err != nil {
			return nil, err
		}
		out = append(out, Comparison{
			BankID:         b.ID,
			BankName:       b.Name,
			InterestType:   p.InterestType,
			InterestRate:   p.InterestRange.Min,
			EMI:            res.EMI,
			TotalInterest:  res.TotalInterest,
			TotalAmount:    res.TotalAmount,
			ProcessingFee:  feeAmount(p.ProcessingFee, principal),
			WithinLimits:   p.PrincipalLimits.Contains(principal) && p.TenureRange.Contains(float64(tenureMonths)),
			PrincipalRange: p.PrincipalLimits,
			TenureRange:    p.TenureRange,
		})
	}

	slices.SortStableFunc(out, func(a, b Comparison) int {
		return cmp.Compare(a.EMI, b.EMI)
	})
	return out, nil
}

func (s *Service) Branches(f BranchFilter) []Branch {
	out := []Branch{}
	for _, b := range s.banks {
		if f.BankID != "" && !strings.EqualFold(f.BankID, b.ID) {
			continue
		}
		for _, br := range b.Branches {
			if f.City != "" && !strings.EqualFold(strings.TrimSpace(f.City), br.City) {
				continue
			}
			out = append(out, br)
		}
	}
	return out
}

func (s *Service) NearestBranches(lat, lng float64, limit int) ([]NearbyBranch, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidLocation
	}
	if limit <= 0 {
		limit = DefaultNearestLimit
	}

	origin := Location{Lat: lat, Lng: lng}
	out := []NearbyBranch{}
	for _, br := range s.Branches(BranchFilter{}) {
		d := decimal.NewFromFloat(Haversine(origin, br.Location)).Round(2).InexactFloat64()
		out = append(out, NearbyBranch{Branch: br, DistanceKM: d})
	}
	slices.SortStableFunc(out, func(a, b NearbyBranch) int {
		return cmp.Compare(a.DistanceKM, b.DistanceKM)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Haversine returns the great-circle distance in kilometres.
func Haversine(a, b Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

func feeAmount(fee ProcessingFee, principal float64) float64 {
	if fee.Type == FeeFixed {
		return fee.Value
	}
	return decimal.NewFromFloat(principal).
		Mul(decimal.NewFromFloat(fee.Value)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
