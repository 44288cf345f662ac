package seed

import (
	"time"

	"github.com/nkiryanov/pointseed/internal/idgen"
	"github.com/nkiryanov/pointseed/internal/models"
	"github.com/nkiryanov/pointseed/internal/pools"
	"github.com/nkiryanov/pointseed/internal/sample"
)

const country = "中国"

func (s *Service) GenerateMerchants() ([]models.Merchant, error) {
	deck := sample.NewDeck(s.pools.Shops())

	var shops []pools.Shop
	var err error
	if s.profile.SampleTaxonomy {
		shops, err = deck.Draw(s.sampler.Rand(), s.profile.Merchants)
	} else {
		shops, err = deck.Take(s.profile.Merchants)
	}
	if err != nil {
		return nil, err
	}

	merchants := make([]models.Merchant, 0, len(shops))
	for i, shop := range shops {
		id := idgen.Sequential("mch_", s.profile.MerchantIDWidth, i+1)

		switch s.profile.Name {
		case models.ProfileWxpay:
			merchants = append(merchants, s.storeMerchant(id, shop))
		default:
			merchants = append(merchants, s.cityMerchant(id, shop))
		}
	}

	return merchants, nil
}

// cityMerchant is named after its city, e.g. "成都火锅店", and carries contact and license data
func (s *Service) cityMerchant(id string, shop pools.Shop) models.Merchant {
	city := sample.From(s.sampler, s.pools.Cities)

	m := models.Merchant{
		ID:              id,
		Name:            city.Name + shop.Name,
		MerchantNo:      s.ids.MerchantNo(),
		ContactPerson:   s.sampler.Name(s.pools.Surnames, s.pools.GivenNames),
		ContactPhone:    s.ids.Phone(),
		BusinessLicense: s.ids.BusinessLicense(),
		Status:          s.merchantStatus(),
		Category:        shop.Category,
	}
	m.CreatedAt = s.merchantCreatedAt()
	m.UpdatedAt = m.CreatedAt

	return m
}

// storeMerchant keeps the brand as name and puts the branch into the store name
func (s *Service) storeMerchant(id string, shop pools.Shop) models.Merchant {
	city := sample.From(s.sampler, s.pools.Cities)

	m := models.Merchant{
		ID:         id,
		Name:       shop.Name,
		MerchantNo: s.ids.MchID(),
		Category:   shop.Category,
		City:       city.Name,
		Province:   city.Province,
		Country:    country,
	}
	if len(s.pools.StoreSuffixes) > 0 {
		m.StoreName = city.Name + sample.From(s.sampler, s.pools.StoreSuffixes)
	}
	// Generated for the schema only; points never depend on it
	m.PointsRatio = s.sampler.Percent(10, 50)
	m.Status = s.merchantStatus()
	m.CreatedAt = s.merchantCreatedAt()
	m.UpdatedAt = m.CreatedAt
	if c := s.profile.Calendar; c != nil {
		m.UpdatedAt = c.ClosedAt
	}

	return m
}

func (s *Service) merchantStatus() string {
	if s.sampler.Bool(s.profile.ActiveProbability) {
		return models.MerchantStatusActive
	}
	return models.MerchantStatusInactive
}

func (s *Service) merchantCreatedAt() time.Time {
	if c := s.profile.Calendar; c != nil {
		return s.sampler.InMonth(c.Month, 1, 28, 8, 18).Truncate(time.Hour)
	}
	return s.sampler.Within(s.clock(), s.profile.MerchantWindowDays)
}

// EligibleMerchants returns the active merchants.
// With none active it falls back to the first `fallback` merchants, so orders always have a target.
func EligibleMerchants(merchants []models.Merchant, fallback int) []models.Merchant {
	var active []models.Merchant
	for _, m := range merchants {
		if m.Active() {
			active = append(active, m)
		}
	}

	if len(active) > 0 {
		return active
	}

	return merchants[:min(fallback, len(merchants))]
}
