// Package report prints generation progress and the final summary to the console.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/pointseed/internal/models"
)

type Stats struct {
	Users             int
	MerchantsActive   int
	MerchantsInactive int
	OrdersPaid        int
	OrdersUnpaid      int
	PointsRecords     int
	Balances          int

	Revenue      decimal.Decimal // major units, paid orders only
	PointsIssued int64
	AveragePaid  decimal.Decimal // zero when nothing was paid
}

func Collect(ds models.Dataset) Stats {
	s := Stats{
		Users:         len(ds.Users),
		PointsRecords: len(ds.PointsRecords),
		Balances:      len(ds.Balances),
	}

	for _, m := range ds.Merchants {
		if m.Active() {
			s.MerchantsActive++
		} else {
			s.MerchantsInactive++
		}
	}

	var revenue int64
	for _, o := range ds.Orders {
		if !o.Paid() {
			s.OrdersUnpaid++
			continue
		}
		s.OrdersPaid++
		revenue += o.Amount
		s.PointsIssued += o.PointsAwarded
	}

	s.Revenue = models.Yuan(revenue)
	if s.OrdersPaid > 0 {
		s.AveragePaid = s.Revenue.Div(decimal.New(int64(s.OrdersPaid), 0))
	}

	return s
}

// Console implements seed.Progress on top of any writer
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Generated(what string, count int) {
	fmt.Fprintf(c.w, "✓ generated %d %s\n", count, what)
}

func (c *Console) Saved(path string) {
	fmt.Fprintf(c.w, "✓ sql written to %s\n", path)
}

func (c *Console) Stats(s Stats) error {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "Statistics:")

	tw := tabwriter.NewWriter(c.w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"users", fmt.Sprint(s.Users)},
		{"merchants", fmt.Sprintf("%d (active %d, inactive %d)", s.MerchantsActive+s.MerchantsInactive, s.MerchantsActive, s.MerchantsInactive)},
		{"orders", fmt.Sprintf("%d (paid %d, unpaid %d)", s.OrdersPaid+s.OrdersUnpaid, s.OrdersPaid, s.OrdersUnpaid)},
		{"points records", fmt.Sprint(s.PointsRecords)},
		{"balances", fmt.Sprint(s.Balances)},
		{"revenue", "¥" + s.Revenue.StringFixed(2)},
		{"points issued", fmt.Sprint(s.PointsIssued)},
		{"average paid order", "¥" + s.AveragePaid.StringFixed(2)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s:\t%s\n", r.name, r.value)
	}

	return tw.Flush()
}
