package kernel

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"ordermanagement/internal/pkg/errs"
)

// MaxEmailLength is the longest accepted address, in characters.
const MaxEmailLength = 254

// ErrEmailIsNotConstructed indicates a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

// Email is a syntactically valid single mailbox address ("jane@x.com").
// Display names ("Jane <jane@x.com>") are rejected.
type Email struct {
	address string
}

// NewEmail trims surrounding whitespace and validates the address.
func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(address); n > MaxEmailLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", n, 1, MaxEmailLength)
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != address || !strings.Contains(parsed.Address[strings.LastIndex(parsed.Address, "@"):], ".") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain address", address))
	}
	return Email{address: address}, nil
}

// Validate returns ErrEmailIsNotConstructed for zero-value Email.
func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}

func (e Email) String() string {
	return e.address
}
