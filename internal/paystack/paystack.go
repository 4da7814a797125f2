// Package paystack implements the checkout payment provider against
// Paystack's hosted checkout. Transactions are initialized by the
// platform backend; this side only hands the user to the payment page
// and reads gateway redirects back.
package paystack

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/checkout"
)

const hostedCheckoutBase = "https://checkout.paystack.com/"

type Config struct {
	PublicKey   string
	CallbackURL string
	CancelURL   string
}

type Provider struct {
	cfg Config
	log zerolog.Logger
}

func NewProvider(cfg Config, logger zerolog.Logger) *Provider {
	return &Provider{
		cfg: cfg,
		log: logger.With().Str("component", "paystack").Logger(),
	}
}

// Open resolves the payment page for an initialized transaction. The
// backend's initialization response carries either a full authorization
// URL or an access code for the hosted page; without one of those there
// is nothing to open.
func (p *Provider) Open(ctx context.Context, co *checkout.Checkout) (string, error) {
	if co.AuthorizationURL != "" {
		return co.AuthorizationURL, nil
	}
	if co.AccessCode != "" {
		return hostedCheckoutBase + url.PathEscape(co.AccessCode), nil
	}
	return "", fmt.Errorf("payment page unavailable for reference %s", co.Reference)
}

// ReferenceFromCallback reads the transaction reference out of a gateway
// redirect. Paystack sends both trxref and reference; either is accepted.
func ReferenceFromCallback(r *http.Request) (string, error) {
	q := r.URL.Query()
	if ref := q.Get("reference"); ref != "" {
		return ref, nil
	}
	if ref := q.Get("trxref"); ref != "" {
		return ref, nil
	}
	return "", fmt.Errorf("callback carries no transaction reference")
}
