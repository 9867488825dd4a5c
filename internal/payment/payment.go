package payment

import (
	"context"

	"github.com/rs/zerolog"
)

// Processor charges a buyer for an order. Implementations are expected to be
// synchronous; the purchase flow awaits the charge before completing the
// order.
type Processor interface {
	// Charge attempts to collect the given amount (minor units) for the
	// order referenced by orderID.
	Charge(ctx context.Context, orderID string, amountCents int64) error
}

// simulatedProcessor implements Processor without contacting a real payment
// provider. Every charge succeeds. A real integration (Stripe et al.) would
// replace this behind the same interface.
type simulatedProcessor struct {
	logger zerolog.Logger
}

// NewSimulatedProcessor creates a processor that approves every charge.
func NewSimulatedProcessor(logger zerolog.Logger) Processor {
	return &simulatedProcessor{
		logger: logger.With().Str("component", "payment-simulator").Logger(),
	}
}

// Charge approves the payment unconditionally.
func (p *simulatedProcessor) Charge(ctx context.Context, orderID string, amountCents int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.logger.Info().
		Str("order_id", orderID).
		Int64("amount_cents", amountCents).
		Msg("simulated payment approved")

	return nil
}
