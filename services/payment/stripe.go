package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Verifier confirms that a payment the client claims to have made actually
// went through before the booking is finalized.
type Verifier interface {
	VerifyIntent(ctx context.Context, paymentIntentID string) error
}

// StripeVerifier checks PaymentIntent status against Stripe. It relies on
// the package-global stripe.Key being set at startup.
type StripeVerifier struct {
	logger *zap.Logger
}

// NewStripeVerifier builds a verifier; returns nil when no secret key is
// configured so callers fall back to pass-through behavior.
func NewStripeVerifier(secretKey string, logger *zap.Logger) *StripeVerifier {
	if secretKey == "" {
		return nil
	}
	stripe.Key = secretKey
	return &StripeVerifier{logger: logger}
}

// VerifyIntent fetches the intent and accepts it only in a settled or
// settling state.
func (v *StripeVerifier) VerifyIntent(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return fmt.Errorf("payment: failed to fetch intent %s: %w", paymentIntentID, err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded,
		stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresCapture:
		return nil
	default:
		v.logger.Warn("payment intent not confirmed",
			zap.String("paymentIntentId", paymentIntentID),
			zap.String("status", string(pi.Status)))
		return fmt.Errorf("payment: intent %s is %s, not confirmed", paymentIntentID, pi.Status)
	}
}
