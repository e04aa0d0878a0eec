package console

import "time"

const (
	RangeToken24h = "24h"
	RangeToken7d  = "7d"
	RangeToken30d = "30d"
	RangeTokenAll = "all"

	DefaultRangeToken = RangeToken24h

	DefaultLocationLimit = 50
	DefaultLogLimit      = 100
	DefaultCommandLimit  = 50
	DefaultDeviceLimit   = 100
)

// ResolveWindow turns a symbolic range token into an absolute cutoff.
// Unrecognized tokens behave like "all" (epoch cutoff) rather than
// erroring; admin clients only send the four known tokens.
func ResolveWindow(token string) time.Time {
	now := time.Now().UTC()
	switch token {
	case RangeToken24h:
		return now.Add(-24 * time.Hour)
	case RangeToken7d:
		return now.AddDate(0, 0, -7)
	case RangeToken30d:
		return now.AddDate(0, 0, -30)
	default:
		return time.Unix(0, 0).UTC()
	}
}
