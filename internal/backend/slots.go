package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (c *Client) CheckAvailability(ctx context.Context, token, lotID string, start, end time.Time) (*entities.AvailabilityResponse, error) {
	q := url.Values{}
	q.Set("start_time", start.Format(time.RFC3339))
	q.Set("end_time", end.Format(time.RFC3339))

	var resp entities.AvailabilityResponse
	path := "/time-slots/check-availability/" + url.PathEscape(lotID) + "?" + q.Encode()
	if err := c.get(ctx, path, token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateTimeSlot(ctx context.Context, token string, req entities.InitializePaymentRequest) (*entities.Booking, error) {
	var booking entities.Booking
	if err := c.post(ctx, "/time-slots", token, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) History(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/time-slots/history", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CompanyHistory(ctx context.Context, token string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	if err := c.get(ctx, "/time-slots/company/history", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CancelTimeSlot(ctx context.Context, token, id string) error {
	return c.put(ctx, "/time-slots/"+url.PathEscape(id)+"/cancel", token, nil, nil)
}
