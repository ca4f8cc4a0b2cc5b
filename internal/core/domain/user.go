package domain

// User is an employee known to the booking service, identified by a
// short access code.
type User struct {
	Code     string `json:"code"`     // 4-character alphanumeric access code
	Name     string `json:"name"`     // Display name
	PhotoURL string `json:"photoUrl"` // Avatar URL shown by clients
}
