// Package api is the authenticated request gateway: every call to the
// payment backend goes through it, so token attachment and error
// normalization happen exactly once, in one place.
package api

import (
	"context"

	"github.com/tzpay/payconsole/internal/models"
)

// TokenProvider supplies the current bearer token, if any. The session
// manager implements it; the gateway holds no credential state of its own.
type TokenProvider interface {
	Token() (string, bool)
}

// TokenProviderFunc adapts a function to the TokenProvider interface.
type TokenProviderFunc func() (string, bool)

func (f TokenProviderFunc) Token() (string, bool) { return f() }

// Client is the typed surface over the backend REST API. No operation
// retries on its own; a failure is surfaced to the caller on the first
// attempt as a *Error.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	BusinessProfile(ctx context.Context) (*models.Business, error)
	UpdateBusinessProfile(ctx context.Context, b models.Business) (*models.Business, error)
	Payments(ctx context.Context, filters models.PaymentFilters) ([]models.Payment, error)
	Payment(ctx context.Context, id int) (*models.Payment, error)
	InitializePayment(ctx context.Context, req models.InitializePaymentRequest) (*models.InitializePaymentResponse, error)
	VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error)
	Customers(ctx context.Context) ([]models.Customer, error)
}
