package seed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/idgen"
	"github.com/nkiryanov/pointseed/internal/models"
	"github.com/nkiryanov/pointseed/internal/points"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cnmobile", validateMobile)
	return v
}

// validateMobile accepts 11 digits starting with a known mobile prefix
func validateMobile(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) != 11 || !slices.Contains(idgen.PhonePrefixes, phone[:3]) {
		return false
	}

	for i := 3; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// Check validates every record and the relations between them.
// All violations are reported at once, wrapped in apperrors.ErrInconsistentDataset.
func Check(ds models.Dataset) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	check := func(kind string, id string, record any) {
		if err := validate.Struct(record); err != nil {
			fail("%s %s: %w", kind, id, err)
		}
	}
	for _, u := range ds.Users {
		check("user", u.ID, u)
	}
	for _, m := range ds.Merchants {
		check("merchant", m.ID, m)
	}
	for _, o := range ds.Orders {
		check("order", o.ID, o)
	}
	for _, r := range ds.PointsRecords {
		check("points record", r.ID, r)
	}
	for _, b := range ds.Balances {
		check("balance", b.UserID, b)
	}

	// Users and merchants
	users := make(map[string]bool, len(ds.Users))
	wechatIDs := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		if users[u.ID] {
			fail("user id %s is duplicated", u.ID)
		}
		if wechatIDs[u.WechatID] {
			fail("wechat id %s is duplicated", u.WechatID)
		}
		users[u.ID], wechatIDs[u.WechatID] = true, true
	}

	merchants := make(map[string]models.Merchant, len(ds.Merchants))
	anyActive := false
	for _, m := range ds.Merchants {
		if _, ok := merchants[m.ID]; ok {
			fail("merchant id %s is duplicated", m.ID)
		}
		merchants[m.ID] = m
		anyActive = anyActive || m.Active()
	}

	// Orders
	orders := make(map[string]models.Order, len(ds.Orders))
	for _, o := range ds.Orders {
		if _, ok := orders[o.ID]; ok {
			fail("order id %s is duplicated", o.ID)
		}
		orders[o.ID] = o

		if !users[o.UserID] {
			fail("order %s references unknown user %s", o.ID, o.UserID)
		}
		m, ok := merchants[o.MerchantID]
		switch {
		case !ok:
			fail("order %s references unknown merchant %s", o.ID, o.MerchantID)
		case anyActive && !m.Active():
			fail("order %s references inactive merchant %s", o.ID, o.MerchantID)
		}

		paid := o.Paid()
		if paid != (o.TransactionID != nil) || paid != (o.PaidAt != nil) {
			fail("order %s: transaction id and paid_at must be set iff the order is paid", o.ID)
		}

		want := int64(0)
		if paid {
			want = points.Compute(o.Amount)
		}
		if o.PointsAwarded != want {
			fail("order %s: points awarded %d, want %d", o.ID, o.PointsAwarded, want)
		}
	}

	// Ledger: one record per paid order
	earned := make(map[string]int64, len(ds.Users))
	recorded := make(map[string]bool, len(ds.PointsRecords))
	for _, r := range ds.PointsRecords {
		o, ok := orders[r.RelatedOrderID]
		switch {
		case !ok:
			fail("points record %s references unknown order %s", r.ID, r.RelatedOrderID)
			continue
		case !o.Paid():
			fail("points record %s references unpaid order %s", r.ID, o.ID)
		case recorded[o.ID]:
			fail("order %s has more than one points record", o.ID)
		}
		recorded[o.ID] = true

		if r.PointsChange != o.PointsAwarded || r.UserID != o.UserID {
			fail("points record %s does not match order %s", r.ID, o.ID)
		}
		earned[r.UserID] += r.PointsChange
	}
	for _, o := range ds.Orders {
		if o.Paid() && !recorded[o.ID] {
			fail("paid order %s has no points record", o.ID)
		}
	}

	// Balances: one per user, equal to the ledger sum
	balances := make(map[string]bool, len(ds.Balances))
	for _, b := range ds.Balances {
		if balances[b.UserID] {
			fail("user %s has more than one balance", b.UserID)
		}
		balances[b.UserID] = true

		if !users[b.UserID] {
			fail("balance references unknown user %s", b.UserID)
		}
		if b.Available != b.TotalEarned-b.TotalSpent {
			fail("balance of %s: available %d != earned %d - spent %d", b.UserID, b.Available, b.TotalEarned, b.TotalSpent)
		}
		if b.TotalEarned != earned[b.UserID] {
			fail("balance of %s: total earned %d, ledger sum %d", b.UserID, b.TotalEarned, earned[b.UserID])
		}
	}
	for _, u := range ds.Users {
		if !balances[u.ID] {
			fail("user %s has no balance", u.ID)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInconsistentDataset, errors.Join(errs...))
	}

	return nil
}
