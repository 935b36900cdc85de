package callback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzpay/payconsole/internal/api"
	"github.com/tzpay/payconsole/internal/models"
)

type fakeVerifier struct {
	resp  *models.VerifyPaymentResponse
	err   error
	calls int
	last  models.VerifyPaymentRequest
}

func (f *fakeVerifier) VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.VerifyPaymentResponse, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func TestParseRedirect(t *testing.T) {
	req, err := ParseRedirect("https://console.example/payment/callback?status=successful&tx_ref=tx-1&transaction_id=999")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", req.TxRef)
	assert.Equal(t, "successful", req.Status)
	assert.Equal(t, "999", req.TransactionID)
}

func TestParseRedirect_MissingTxRef(t *testing.T) {
	_, err := ParseRedirect("https://console.example/payment/callback?status=failed")
	require.ErrorIs(t, err, ErrMissingReference)
}

func TestHandleRedirect_MissingTxRefMakesNoNetworkCall(t *testing.T) {
	fake := &fakeVerifier{}
	v := NewVerifier(fake, nil)

	out := v.HandleRedirect(context.Background(), "https://console.example/payment/callback?status=failed")

	assert.False(t, out.Verified)
	assert.Equal(t, "Invalid payment reference. Please try again.", out.Message)
	assert.Zero(t, fake.calls, "no backend call may happen without a tx_ref")
}

func TestHandleRedirect_Success(t *testing.T) {
	fake := &fakeVerifier{
		resp: &models.VerifyPaymentResponse{
			Status: "success",
			Data:   &models.Payment{Reference: "PAY-1", Amount: 1000, Currency: "TZS"},
		},
	}
	v := NewVerifier(fake, nil)

	out := v.HandleRedirect(context.Background(), "https://console.example/cb?status=successful&tx_ref=tx-1&transaction_id=999")

	assert.True(t, out.Verified)
	require.NotNil(t, out.Payment)
	assert.Equal(t, "PAY-1", out.Payment.Reference)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "tx-1", fake.last.TxRef)
}

func TestHandleRedirect_BackendSaysFailed(t *testing.T) {
	fake := &fakeVerifier{
		resp: &models.VerifyPaymentResponse{Status: "failed", Message: "charge was declined"},
	}
	v := NewVerifier(fake, nil)

	out := v.HandleRedirect(context.Background(), "https://console.example/cb?tx_ref=tx-1")

	assert.False(t, out.Verified)
	assert.Equal(t, "charge was declined", out.Message)
}

func TestHandleRedirect_BackendFailedWithoutMessage(t *testing.T) {
	fake := &fakeVerifier{resp: &models.VerifyPaymentResponse{Status: "failed"}}
	v := NewVerifier(fake, nil)

	out := v.HandleRedirect(context.Background(), "https://console.example/cb?tx_ref=tx-1")

	assert.Equal(t, "Payment verification failed. Please try again.", out.Message)
}

func TestHandleRedirect_GatewayError(t *testing.T) {
	fake := &fakeVerifier{err: &api.Error{Kind: api.KindTransport, Message: "Failed to verify payment"}}
	v := NewVerifier(fake, nil)

	out := v.HandleRedirect(context.Background(), "https://console.example/cb?tx_ref=tx-1")

	assert.False(t, out.Verified)
	assert.Equal(t, "An error occurred while verifying the payment. Please try again.", out.Message)
}
