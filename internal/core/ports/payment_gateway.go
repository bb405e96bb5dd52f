package ports

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
)

// PaymentIntent is a checkout opened on the payment gateway. The customer
// completes it on the client; the gateway then calls back with a payment id
// and a signature over "gatewayOrderId|gatewayPaymentId".
type PaymentIntent struct {
	GatewayOrderID string
	Amount         kernel.Money
}

// PaymentGateway defines the contract with the external payment provider.
type PaymentGateway interface {
	// CreateIntent opens a gateway order for the given amount. Receipt is the
	// merchant-side reference (our order id); notes travel to the gateway
	// dashboard as free-form metadata.
	CreateIntent(ctx context.Context, amount kernel.Money, receipt string, notes map[string]string) (PaymentIntent, error)

	// VerifySignature checks the callback signature the gateway computed over
	// "gatewayOrderId|gatewayPaymentId". A false return is a normal outcome
	// (tampered or misconfigured callback), not an error.
	VerifySignature(gatewayOrderID string, gatewayPaymentID string, signature string) bool

	// KeyID returns the public key identifier the client needs to open the
	// checkout for an intent.
	KeyID() string
}
