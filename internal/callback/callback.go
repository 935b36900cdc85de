// Package callback handles the payment-provider redirect: after a customer
// completes (or abandons) a payment externally, the provider redirects to a
// landing URL carrying status, tx_ref, and transaction_id query parameters,
// and the payment must be verified with the backend before anything is shown
// as final.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/tzpay/payconsole/internal/logging"
	"github.com/tzpay/payconsole/internal/models"
)

// ErrMissingReference marks a callback URL with no tx_ref. Such a callback
// cannot be verified and no backend call is made for it.
var ErrMissingReference = errors.New("payment reference missing from callback URL")

// User-facing outcome messages, fixed per failure cause.
const (
	msgSuccess          = "Payment completed successfully!"
	msgInvalidReference = "Invalid payment reference. Please try again."
	msgVerifyFailed     = "Payment verification failed. Please try again."
	msgVerifyError      = "An error occurred while verifying the payment. Please try again."
)

// PaymentVerifier is the slice of the gateway this package drives.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error)
}

// ParseRedirect extracts the verification payload from a landing URL.
// status and transaction_id are passed through as-is (they may be empty);
// tx_ref is mandatory.
func ParseRedirect(rawURL string) (models.VerifyPaymentRequest, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.VerifyPaymentRequest{}, fmt.Errorf("parse callback url: %w", err)
	}
	q := u.Query()
	req := models.VerifyPaymentRequest{
		TxRef:         q.Get("tx_ref"),
		Status:        q.Get("status"),
		TransactionID: q.Get("transaction_id"),
	}
	if req.TxRef == "" {
		return models.VerifyPaymentRequest{}, ErrMissingReference
	}
	return req, nil
}

// Outcome is the terminal state of a callback: verified or not, with the
// message to show and, on success, the confirmed payment details.
type Outcome struct {
	Verified bool
	Message  string
	Payment  *models.Payment
}

// Verifier drives redirect verification through the gateway.
type Verifier struct {
	client PaymentVerifier
	log    logging.Logger
}

// NewVerifier builds a Verifier over the given gateway.
func NewVerifier(client PaymentVerifier, log logging.Logger) *Verifier {
	if log == nil {
		log = logging.Discard()
	}
	return &Verifier{client: client, log: log.With("component", "callback")}
}

// HandleRedirect parses the landing URL and verifies the payment with the
// backend. Every failure path lands in a non-verified Outcome rather than an
// error: the caller always has something to show.
func (v *Verifier) HandleRedirect(ctx context.Context, rawURL string) Outcome {
	req, err := ParseRedirect(rawURL)
	if err != nil {
		v.log.Warn(ctx, "unusable payment callback", "error", err)
		return Outcome{Message: msgInvalidReference}
	}

	resp, err := v.client.VerifyPayment(ctx, req)
	if err != nil {
		v.log.Error(ctx, "payment verification failed", "tx_ref", req.TxRef, "error", err)
		return Outcome{Message: msgVerifyError}
	}

	if resp.Status == "success" {
		return Outcome{Verified: true, Message: msgSuccess, Payment: resp.Data}
	}

	msg := resp.Message
	if msg == "" {
		msg = msgVerifyFailed
	}
	return Outcome{Message: msg}
}
