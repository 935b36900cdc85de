package models

import (
	"net/url"
	"time"
)

// PaymentMethod is the channel a payment is collected through.
type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "mobile_money"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodMobileMoney, MethodCard, MethodBankTransfer:
		return true
	}
	return false
}

// PaymentStatus is the server-owned lifecycle state of a payment. The client
// never mutates it directly; it only reads it and triggers initialize/verify.
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "pending"
	StatusSuccessful PaymentStatus = "successful"
	StatusFailed     PaymentStatus = "failed"
	StatusCancelled  PaymentStatus = "cancelled"
)

// Customer identifies the paying party on a payment record.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Payment is a single payment record as listed or fetched from the backend.
type Payment struct {
	ID            int           `json:"id"`
	Reference     string        `json:"reference"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Customer      Customer      `json:"customer"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PaymentFilters narrows a payments listing. Zero-valued fields are omitted
// from the outgoing query entirely, so an empty PaymentFilters means
// "no filter" rather than a set of empty-string constraints.
type PaymentFilters struct {
	Status        PaymentStatus
	PaymentMethod PaymentMethod
	DateFrom      string // inclusive, YYYY-MM-DD
	DateTo        string // inclusive, YYYY-MM-DD
	Search        string
}

// Query renders the filters as URL query parameters.
func (f PaymentFilters) Query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.PaymentMethod != "" {
		q.Set("payment_method", string(f.PaymentMethod))
	}
	if f.DateFrom != "" {
		q.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("date_to", f.DateTo)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// InitializePaymentRequest starts a new payment and yields a link the
// customer completes the payment through.
type InitializePaymentRequest struct {
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
}

// InitializePaymentResponse carries the provider payment link. Status is
// "success" when the link was created.
type InitializePaymentResponse struct {
	Status string `json:"status"`
	Data   struct {
		PaymentLink string `json:"payment_link"`
	} `json:"data"`
}

// VerifyPaymentRequest asks the backend to confirm a payment's final state
// with the provider after a redirect callback.
type VerifyPaymentRequest struct {
	TxRef         string `json:"tx_ref"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// VerifyPaymentResponse reports the verification outcome. Data is set on
// success; Message explains a failure.
type VerifyPaymentResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Data    *Payment `json:"data,omitempty"`
}
