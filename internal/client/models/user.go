// Package models holds the client-side data types exchanged with the Loom API.
package models

import "time"

// User is the profile of the account behind the current session. It is owned
// by the session store and replaced wholesale on every successful profile
// resolution; no field is updated in place.
type User struct {
	Username      string     `json:"username"`
	Email         string     `json:"email,omitempty"`
	FullName      string     `json:"full_name,omitempty"`
	PreferredName string     `json:"preferred_name,omitempty"`
	Credits       int64      `json:"credits"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// DisplayName resolves the name shown to the user. The fallback order is
// fixed: preferred name, full name, username, then the literal "User".
func (u *User) DisplayName() string {
	if u == nil {
		return "User"
	}
	switch {
	case u.PreferredName != "":
		return u.PreferredName
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return "User"
	}
}

// Clone returns an independent copy, so store snapshots cannot be mutated
// from the outside.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}
