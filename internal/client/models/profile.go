package models

// DefaultProfileName is displayed until the user saves a profile.
const DefaultProfileName = "Student Name"

// Profile is the user-editable profile stored per email.
type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}
