// Package services holds the business rules that sit between the HTTP
// handlers and the repositories.
package services

import "time"

// Clock returns the current time. Attendance and leave bookkeeping read time
// only through a Clock so tests can pin it.
type Clock func() time.Time

// SystemClock reports wall-clock time in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
