package api

import (
	"errors"
	"fmt"
	"time"
)

// MaxRangeDays is the widest window the eBay Finances API accepts per query.
const MaxRangeDays = 90

// ParseDateRange validates the from/to query values of a transaction query.
// Bounds are inclusive calendar dates in YYYY-MM-DD form.
func ParseDateRange(fromValue, toValue string) (from, to time.Time, err error) {
	if fromValue == "" || toValue == "" {
		return time.Time{}, time.Time{}, errors.New("both 'from' and 'to' query parameters are required")
	}

	from, err = time.Parse("2006-01-02", fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date %q, expected YYYY-MM-DD", fromValue)
	}
	to, err = time.Parse("2006-01-02", toValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date %q, expected YYYY-MM-DD", toValue)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("'from' must not be after 'to'")
	}
	// Both bounds count, so from plus 89 days is the widest allowed window.
	if days := int(to.Sub(from).Hours()/24) + 1; days > MaxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("date range must not exceed %d days", MaxRangeDays)
	}

	return from, to, nil
}
