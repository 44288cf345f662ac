package sqlfile

import (
	"fmt"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/models"
)

// Layout is how one profile's dataset lands in SQL: target database, file name and tables
type Layout struct {
	Database string
	FileName string

	render func(l Layout, ds models.Dataset) *Script
}

var layouts = map[string]Layout{
	models.ProfileRealistic: {
		Database: "points_app_dev",
		FileName: "insert_realistic_data.sql",
		render:   renderRealistic,
	},
	models.ProfileWxpay: {
		Database: "weixin_payment",
		FileName: "insert_merchants_orders_points.sql",
		render:   renderWxpay,
	},
}

func LayoutFor(profile string) (Layout, error) {
	l, ok := layouts[profile]
	if !ok {
		return Layout{}, fmt.Errorf("%w: no sql layout for %q", apperrors.ErrUnknownProfile, profile)
	}
	return l, nil
}

// Render builds the whole script for the dataset's profile
func Render(ds models.Dataset) (*Script, error) {
	l, err := LayoutFor(ds.Profile)
	if err != nil {
		return nil, err
	}
	return l.render(l, ds), nil
}

func header(s *Script, title string, l Layout, ds models.Dataset) {
	s.Banner(
		title,
		"Generated at: "+ds.GeneratedAt.Format(TimeLayout),
		fmt.Sprintf("Run: %s (seed %d)", ds.RunID, ds.Seed),
		"Database: "+l.Database,
	).Blank()
	s.Use(l.Database).Blank()
}
