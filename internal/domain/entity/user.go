package entity

import "time"

// User is a reader account. Users have no dependencies and are never mutated after creation.
type User struct {
	ID        uint      // Store assigned identifier, increasing in creation order.
	Username  string    // Display handle.
	Email     string    // Contact address.
	CreatedAt time.Time // Set by the store on insert.
}

// Label returns the username.
func (u *User) Label() string {
	return u.Username
}
