package models

// Session is the persisted marker of the user logged in on this device.
type Session struct {
	Username string `json:"username"`
}
