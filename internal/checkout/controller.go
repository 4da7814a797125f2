package checkout

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
)

// Provider opens the external payment page for a checkout and returns
// the URL the user must be sent to. Implementations own every gateway
// specific detail; the controller only drives state.
type Provider interface {
	Open(ctx context.Context, co *Checkout) (string, error)
}

// Controller drives the payment state machine and verifies outcomes
// server-side. Verification always goes through the platform verify
// endpoint; the gateway redirect alone never marks a payment successful.
type Controller struct {
	client   *backend.Client
	provider Provider
	log      zerolog.Logger
}

func NewController(client *backend.Client, provider Provider, logger zerolog.Logger) *Controller {
	return &Controller{
		client:   client,
		provider: provider,
		log:      logger.With().Str("component", "checkout").Logger(),
	}
}

// Start transitions pending -> processing and opens the payment page.
// A provider error fails the checkout with the provider's message.
func (c *Controller) Start(ctx context.Context, co *Checkout) (string, error) {
	if !co.Complete() {
		return "", fmt.Errorf("checkout state is incomplete")
	}
	if co.State != StatePending {
		return "", fmt.Errorf("cannot start payment from state %q", co.State)
	}

	co.State = StateProcessing
	url, err := c.provider.Open(ctx, co)
	if err != nil {
		co.State = StateFailed
		co.Message = err.Error()
		return "", err
	}
	c.log.Info().Str("reference", co.Reference).Msg("payment started")
	return url, nil
}

// HandleReturn is the gateway success callback: verify the reference
// with the backend and settle the state accordingly.
func (c *Controller) HandleReturn(ctx context.Context, token string, co *Checkout) error {
	if co.State != StateProcessing {
		return fmt.Errorf("no payment in progress for reference %q", co.Reference)
	}

	resp, err := c.client.VerifyPayment(ctx, token, co.Reference)
	if err != nil {
		co.State = StateFailed
		co.Message = err.Error()
		return err
	}
	if resp.Status != "success" {
		co.State = StateFailed
		co.Message = resp.Message
		if co.Message == "" {
			co.Message = "payment could not be verified"
		}
		return fmt.Errorf("%s", co.Message)
	}

	co.State = StateSuccess
	co.Message = ""
	co.TimeSlot = resp.Booking
	c.log.Info().Str("reference", co.Reference).Msg("payment verified")
	return nil
}

// Cancel is the gateway cancel callback. Cancellation is not an error:
// the checkout returns to pending with a distinct cancelled message so
// the user can start again.
func (c *Controller) Cancel(co *Checkout) {
	if co.State != StateProcessing {
		return
	}
	co.State = StatePending
	co.Message = "Payment cancelled"
	c.log.Info().Str("reference", co.Reference).Msg("payment cancelled by user")
}

// Retry is the explicit user action out of a failed payment.
func (c *Controller) Retry(co *Checkout) error {
	if co.State != StateFailed {
		return fmt.Errorf("cannot retry from state %q", co.State)
	}
	co.State = StatePending
	co.Message = ""
	return nil
}
