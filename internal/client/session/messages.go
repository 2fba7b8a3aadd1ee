package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gatormarket/internal/client/accounts"
	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/images"
	"github.com/dmitrijs2005/gatormarket/internal/client/listings"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/remote"
)

// Message renders err as the one line shown to the user. It returns ""
// for nil and for discarded results.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var re *remote.Error
	if errors.As(err, &re) {
		return re.Message
	}
	var de *accounts.DomainError
	if errors.As(err, &de) {
		return forms.DomainMessage(de.Domain)
	}

	switch {
	case errors.Is(err, ErrStale):
		return ""
	case errors.Is(err, accounts.ErrInvalidDomain):
		return forms.DomainMessage(forms.DefaultEmailDomain)
	case errors.Is(err, accounts.ErrDuplicateEmail):
		return "User with this email already exists"
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, listings.ErrNotFound):
		return "Listing not found"
	case errors.Is(err, models.ErrUnknownCategory):
		return "Please choose one of: school, apparel, living, services, tickets"
	case errors.Is(err, listings.ErrInvalidListing):
		return "Please check the listing details"
	case errors.Is(err, images.ErrTooLarge):
		return "Image must be smaller than 5MB"
	case errors.Is(err, images.ErrNotImage):
		return "Please choose an image file"
	case errors.Is(err, ErrNotOwner):
		return "You can only change your own listings"
	case errors.Is(err, ErrNotLoggedIn):
		return "Please log in first"
	case errors.Is(err, ErrLoggedIn):
		return "You are already logged in"
	case errors.Is(err, ErrBusy):
		return "Please wait for the current request to finish"
	case errors.Is(err, ErrNotOnListing):
		return "Open a listing first"
	case errors.Is(err, ErrInvalidPage):
		return "That page is not available"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled"
	}
	return "Something went wrong, please try again"
}
