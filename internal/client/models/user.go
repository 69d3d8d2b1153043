// Package models defines client-side data models.
package models

// User is a row of the local credential table. Password is kept as entered.
type User struct {
	ID       int64
	Username string
	Password string
}
