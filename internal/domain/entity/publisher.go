package entity

import "time"

// Publisher releases books. Like authors, publishers recommend each other.
type Publisher struct {
	ID              uint
	FirstName       string
	LastName        string
	RecommendedByID *uint // Another publisher that existed before this one, or nil.
	JoinDate        time.Time
	PopularityScore int // 1..100
	CreatedAt       time.Time
}

// Label returns "First Last".
func (p *Publisher) Label() string {
	return p.FirstName + " " + p.LastName
}
