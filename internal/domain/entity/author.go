package entity

import "time"

// Author writes books and can be followed by users.
type Author struct {
	ID              uint
	FirstName       string
	LastName        string
	Address         string
	ZipCode         string
	Phone           string
	RecommendedByID *uint // Another author that existed before this one, or nil.
	JoinDate        time.Time
	PopularityScore int    // 1..100
	FollowerIDs     []uint // User ids, stored through the author_followers join table.
	CreatedAt       time.Time
}

// Label returns "First Last".
func (a *Author) Label() string {
	return a.FirstName + " " + a.LastName
}

// AuthorFollower is one row of the follower relation. It owns the pairing;
// neither the author nor the user holds the other.
type AuthorFollower struct {
	AuthorID uint
	UserID   uint
}
