package models

// User represents a row of the user directory.
type User struct {
	Code     string `json:"code"` // Primary Key, 4-character access code
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}
