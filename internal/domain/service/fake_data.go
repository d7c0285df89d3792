// Package service declares the collaborators the generators depend on but do not own.
package service

import "time"

// FakeDataProvider synthesises plausible field values and random choices.
// Implementations are seeded explicitly so runs can be reproduced.
type FakeDataProvider interface {
	Username() string
	Email() string
	FirstName() string
	LastName() string
	StreetAddress() string
	ZipCode() string
	Phone() string
	// Words returns n random words joined by single spaces.
	Words(n int) string
	Genre() string
	// DateWithinYears returns a calendar date between now-years and today, inclusive.
	DateWithinYears(years int) time.Time
	// IntBetween returns a uniform integer in [lo, hi].
	IntBetween(lo, hi int) int
}
