package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/models"
	"github.com/nkiryanov/pointseed/internal/pools"
	"github.com/nkiryanov/pointseed/internal/testutil"
)

type progressSpy struct {
	stages map[string]int
}

func (p *progressSpy) Generated(what string, count int) {
	p.stages[what] = count
}

func newService(t *testing.T, profile Profile, seed int64) *Service {
	t.Helper()

	p, err := pools.Load(profile.Name)
	require.NoError(t, err, "pools must load for profile %s", profile.Name)

	return NewService(Config{
		Profile: profile,
		Seed:    seed,
		Clock:   testutil.FixedClock(testutil.Now),
	}, p, nil)
}

func generate(t *testing.T, profile Profile, seed int64) models.Dataset {
	t.Helper()

	ds, err := newService(t, profile, seed).Generate()
	require.NoError(t, err, "generation should not fail")

	return ds
}

func TestSeed(t *testing.T) {
	t.Run("ProfileByName", func(t *testing.T) {
		p, err := ProfileByName("realistic")
		require.NoError(t, err)
		require.Equal(t, Realistic.Name, p.Name)

		p, err = ProfileByName("wxpay")
		require.NoError(t, err)
		require.Equal(t, Wxpay.Name, p.Name)

		_, err = ProfileByName("unknown")
		require.ErrorIs(t, err, apperrors.ErrUnknownProfile)
	})

	t.Run("Generate", func(t *testing.T) {
		for _, profile := range []Profile{Realistic, Wxpay} {
			t.Run(profile.Name+" is consistent", func(t *testing.T) {
				for seed := range int64(5) {
					ds := generate(t, profile, seed)

					require.NoError(t, Check(ds), "seed %d produced an inconsistent dataset", seed)
					require.Len(t, ds.Users, profile.Users)
					require.Len(t, ds.Merchants, profile.Merchants)
					require.Len(t, ds.Balances, profile.Users, "every user must have a balance")
				}
			})

			t.Run(profile.Name+" is reproducible", func(t *testing.T) {
				require.Equal(t, generate(t, profile, 99), generate(t, profile, 99))
			})

			t.Run(profile.Name+" differs across seeds in values only", func(t *testing.T) {
				a, b := generate(t, profile, 1), generate(t, profile, 2)

				require.NotEqual(t, a.RunID, b.RunID)
				require.NotEqual(t, a.Users[0].WechatID, b.Users[0].WechatID)
				require.Equal(t, len(a.Users), len(b.Users))
				require.Equal(t, len(a.Merchants), len(b.Merchants))
				require.NoError(t, Check(a))
				require.NoError(t, Check(b))
			})
		}
	})

	t.Run("realistic profile", func(t *testing.T) {
		ds := generate(t, Realistic, 3)

		require.Equal(t, models.ProfileRealistic, ds.Profile)
		require.Equal(t, "user_00001", ds.Users[0].ID)
		require.Equal(t, "mch_00001", ds.Merchants[0].ID)

		t.Run("one to four orders per user", func(t *testing.T) {
			perUser := make(map[string]int)
			for _, o := range ds.Orders {
				perUser[o.UserID]++
			}

			require.Len(t, perUser, len(ds.Users), "every user gets at least one order")
			for id, n := range perUser {
				require.GreaterOrEqual(t, n, 1, "user %s", id)
				require.LessOrEqual(t, n, 4, "user %s", id)
			}
		})

		t.Run("merchant names are unique", func(t *testing.T) {
			names := make(map[string]bool)
			for _, m := range ds.Merchants {
				require.False(t, names[m.Name], "merchant name %s repeated", m.Name)
				names[m.Name] = true
				require.NotEmpty(t, m.ContactPerson)
				require.NotEmpty(t, m.BusinessLicense)
			}
		})

		t.Run("orders snapshot merchant and stay in window", func(t *testing.T) {
			merchants := make(map[string]models.Merchant)
			for _, m := range ds.Merchants {
				merchants[m.ID] = m
			}

			for _, o := range ds.Orders {
				m := merchants[o.MerchantID]
				require.Equal(t, m.Name, o.MerchantName)
				require.Equal(t, m.Category, o.MerchantCategory)
				require.Equal(t, "wechat_pay", o.PaymentMethod)
				require.Contains(t, []string{models.OrderStatusPaid, models.OrderStatusCancelled}, o.Status)
				require.False(t, o.CreatedAt.After(testutil.Now))
				require.True(t, o.CreatedAt.After(testutil.Now.AddDate(0, 0, -62)))
			}
		})

		t.Run("records describe the payment", func(t *testing.T) {
			require.NotEmpty(t, ds.PointsRecords)
			for _, r := range ds.PointsRecords {
				require.Equal(t, models.RecordTypePaymentReward, r.RecordType)
				require.Regexp(t, `^支付¥[0-9]+\.[0-9]{2}获得[0-9]+积分$`, r.Description)
				require.Regexp(t, `^pts_`, r.ID)
			}
		})

		t.Run("balances have no monthly subtotal", func(t *testing.T) {
			for _, b := range ds.Balances {
				require.Nil(t, b.MonthlyEarned)
				require.Zero(t, b.TotalSpent)
			}
		})
	})

	t.Run("wxpay profile", func(t *testing.T) {
		ds := generate(t, Wxpay, 4)

		t.Run("merchants follow taxonomy order and are active", func(t *testing.T) {
			require.Equal(t, "mch_001", ds.Merchants[0].ID)
			require.Equal(t, "星巴克咖啡", ds.Merchants[0].Name)
			require.Equal(t, "餐饮", ds.Merchants[0].Category)
			for _, m := range ds.Merchants {
				require.Equal(t, models.MerchantStatusActive, m.Status)
				require.Regexp(t, `^156[0-9]{6}$`, m.MerchantNo)
				require.Equal(t, "中国", m.Country)
				require.NotEmpty(t, m.Province)
				require.Contains(t, m.StoreName, m.City)
				require.Equal(t, Wxpay.Calendar.ClosedAt, m.UpdatedAt)
			}
		})

		t.Run("fixed order total with sequential ids", func(t *testing.T) {
			require.Len(t, ds.Orders, 200)
			require.Equal(t, "order_000001", ds.Orders[0].ID)
			require.Equal(t, "order_000200", ds.Orders[199].ID)

			for _, r := range ds.PointsRecords {
				require.Equal(t, "point_"+r.RelatedOrderID[len("order_"):], r.ID, "record shares the order sequence number")
				require.Equal(t, "支付订单获得积分", r.Description)
			}
		})

		t.Run("orders fall in September 2025", func(t *testing.T) {
			for _, o := range ds.Orders {
				require.Equal(t, time.September, o.CreatedAt.Month())
				require.GreaterOrEqual(t, o.CreatedAt.Hour(), 8)
				require.LessOrEqual(t, o.CreatedAt.Hour(), 22)
			}
		})

		t.Run("monthly earned is a share of total", func(t *testing.T) {
			for _, b := range ds.Balances {
				require.NotNil(t, b.MonthlyEarned)
				require.NotNil(t, b.UpdatedAt)
				require.GreaterOrEqual(t, *b.MonthlyEarned, b.TotalEarned/5-1)
				require.LessOrEqual(t, *b.MonthlyEarned, b.TotalEarned/2)
				require.GreaterOrEqual(t, b.UpdatedAt.Day(), 20)
			}
		})
	})

	t.Run("completion rate scenario", func(t *testing.T) {
		// 100 users, 20 merchants, 200 orders at 95%
		ds := generate(t, Wxpay, 2025)

		completed := 0
		var awarded, ledger int64
		for _, o := range ds.Orders {
			if o.Paid() {
				completed++
				awarded += o.PointsAwarded
			}
		}
		for _, r := range ds.PointsRecords {
			ledger += r.PointsChange
		}

		require.InDelta(t, 190, completed, 15, "completed orders should be close to 95%% of 200")
		require.Equal(t, completed, len(ds.PointsRecords))
		require.Equal(t, awarded, ledger, "ledger sum must equal awarded points exactly")
	})

	t.Run("progress is reported per stage", func(t *testing.T) {
		p, err := pools.Load(models.ProfileRealistic)
		require.NoError(t, err)
		spy := &progressSpy{stages: make(map[string]int)}

		ds, err := NewService(Config{Profile: Realistic, Seed: 1, Progress: spy}, p, nil).Generate()

		require.NoError(t, err)
		require.Equal(t, map[string]int{
			"users":          len(ds.Users),
			"merchants":      len(ds.Merchants),
			"orders":         len(ds.Orders),
			"points records": len(ds.PointsRecords),
			"balances":       len(ds.Balances),
		}, spy.stages)
	})

	t.Run("taxonomy exhausted fail", func(t *testing.T) {
		for _, profile := range []Profile{Realistic, Wxpay} {
			profile.Merchants = 1000

			_, err := newService(t, profile, 1).Generate()

			require.ErrorIs(t, err, apperrors.ErrTaxonomyExhausted)
		}
	})
}
