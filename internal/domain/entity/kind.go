// Package entity contains the records the generators create. Relations are
// carried by identifiers, never by pointers to other entities.
package entity

// Kind names an entity type in reports and logs.
type Kind string

const (
	KindUser      Kind = "User"
	KindAuthor    Kind = "Author"
	KindPublisher Kind = "Publisher"
	KindBook      Kind = "Book"
)

// Labeled is implemented by every entity so it can be echoed after creation.
type Labeled interface {
	Label() string
}
