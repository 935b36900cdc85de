package cli

import (
	"errors"
	"strings"

	"github.com/tzpay/payconsole/internal/models"
)

// Field-level rules checked before anything reaches the network. Mirrors the
// backend's registration constraints.
const (
	minUsernameLen = 4
	minPasswordLen = 8
)

var (
	errUsernameTooShort   = errors.New("username must be at least 4 characters")
	errInvalidEmail       = errors.New("invalid email address")
	errPasswordTooShort   = errors.New("password must be at least 8 characters")
	errPasswordMismatch   = errors.New("passwords must match")
	errBusinessIncomplete = errors.New("all business fields are required")
)

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

// validateRegistration applies the per-field constraints to a registration
// payload plus the password confirmation.
func validateRegistration(req models.RegisterRequest, confirm string) error {
	if len(req.Username) < minUsernameLen {
		return errUsernameTooShort
	}
	if !validEmail(req.Email) {
		return errInvalidEmail
	}
	if len(req.Password) < minPasswordLen {
		return errPasswordTooShort
	}
	if req.Password != confirm {
		return errPasswordMismatch
	}
	b := req.Business
	if b.Name == "" || b.Email == "" || b.Phone == "" || b.Address == "" || b.BusinessRegNumber == "" {
		return errBusinessIncomplete
	}
	if !validEmail(b.Email) {
		return errInvalidEmail
	}
	return nil
}

// validateNewPayment checks the interactive payment form before submission.
func validateNewPayment(req models.InitializePaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if req.Currency == "" {
		return errors.New("currency is required")
	}
	if !req.PaymentMethod.Valid() {
		return errors.New("payment method must be one of: mobile_money, card, bank_transfer")
	}
	if req.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if !validEmail(req.CustomerEmail) {
		return errInvalidEmail
	}
	if req.CustomerPhone == "" {
		return errors.New("customer phone is required")
	}
	return nil
}
