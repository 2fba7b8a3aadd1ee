// Package forms validates user input before any authentication or listing
// operation runs. A failed validation never reaches a service.
package forms

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultEmailDomain = "@ufl.edu"
	MaxBioLength       = 100
)

// ValidationError describes one rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// HasDomain reports whether email ends with domain (case-insensitive).
func HasDomain(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), strings.ToLower(domain))
}

type Login struct {
	Email    string
	Password string
}

func (f Login) Validate(domain string) error {
	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return invalid("email", "Please fill in all fields")
	}
	return validateEmail(f.Email, domain)
}

type Register struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f Register) Validate(domain string) error {
	if strings.TrimSpace(f.FullName) == "" || strings.TrimSpace(f.Email) == "" ||
		f.Password == "" || f.ConfirmPassword == "" {
		return invalid("form", "Please fill in all fields")
	}
	if err := validateEmail(f.Email, domain); err != nil {
		return err
	}
	if f.Password != f.ConfirmPassword {
		return invalid("confirmPassword", "Passwords do not match!")
	}
	return nil
}

func validateEmail(email, domain string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return invalid("email", "Please enter a valid email address")
	}
	if !HasDomain(email, domain) {
		return invalid("email", DomainMessage(domain))
	}
	return nil
}

// DomainMessage is the notice shown when an email falls outside domain.
func DomainMessage(domain string) string {
	if strings.EqualFold(domain, DefaultEmailDomain) {
		return "Please use a valid UF email address"
	}
	return fmt.Sprintf("Please use an email address ending in %s", domain)
}

// Listing is the raw create/edit form. Price stays a string until parsed.
type Listing struct {
	Title       string
	Price       string
	Category    string
	Description string
	Image       string
}

// ParsePrice returns the listing price or a validation error when it is
// missing, not a number or not strictly positive.
func (f Listing) ParsePrice() (float64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(f.Price), "$"))
	if raw == "" {
		return 0, invalid("price", "Please fill in title and price")
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, invalid("price", "Please enter a valid price")
	}
	return p, nil
}

// ValidateListing checks the required fields of a listing form.
// Category parsing is left to the listings package.
func ValidateListing(f Listing) (float64, error) {
	if strings.TrimSpace(f.Title) == "" {
		return 0, invalid("title", "Please fill in title and price")
	}
	return f.ParsePrice()
}

type Profile struct {
	Name  string
	Phone string
	Bio   string
}

func (f Profile) Validate() error {
	if n := utf8.RuneCountInString(f.Bio); n > MaxBioLength {
		return invalid("bio", fmt.Sprintf("Bio must be at most %d characters (got %d)", MaxBioLength, n))
	}
	return nil
}
