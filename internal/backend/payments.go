package backend

import (
	"context"
	"net/url"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (c *Client) InitializePayment(ctx context.Context, token string, req entities.InitializePaymentRequest) (*entities.PaymentInit, error) {
	var resp entities.PaymentInit
	if err := c.post(ctx, "/payments/initialize", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyPayment(ctx context.Context, token, reference string) (*entities.VerifyPaymentResponse, error) {
	var resp entities.VerifyPaymentResponse
	if err := c.get(ctx, "/payments/verify/"+url.PathEscape(reference), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
