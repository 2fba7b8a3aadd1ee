package models

// User is one record of the mock account registry. The JSON field names
// are part of the persisted format.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// Identity is who the session belongs to, whichever backend authenticated it.
type Identity struct {
	Email    string
	Username string
	IsAdmin  bool
}

func (i Identity) IsZero() bool {
	return i.Email == ""
}

// DisplayName prefers the username and falls back to the email.
func (i Identity) DisplayName() string {
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}
