package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Form is a weekly publication of orderable options for one category.
// At most one form per category is active at a time; CatalogService
// enforces that on activation.
type Form struct {
	gorm.Model
	Category string `gorm:"not null" json:"category"` // LUNCH | SNACKS
	Week     string `gorm:"not null" json:"week"`     // ISO week, e.g. "2024-W01"
	Active   bool   `gorm:"not null;default:false" json:"active"`

	Options []Option `json:"options"`
	Orders  []Order  `json:"-"`
}

// DisplayWeek renders the ISO week as a date range, falling back to the
// raw week string when it doesn't parse.
func (f *Form) DisplayWeek() string {
	parts := strings.SplitN(f.Week, "-W", 2)
	if len(parts) != 2 {
		return f.Week
	}
	year, err1 := strconv.Atoi(parts[0])
	week, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return f.Week
	}

	start := firstISOWeekMonday(year).AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", start.Format("Jan 02, 2006"), end.Format("Jan 02, 2006"))
}

func firstISOWeekMonday(year int) time.Time {
	// ISO week 1 contains Jan 4.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset)
}
