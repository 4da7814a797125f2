package backend

import (
	"context"
	"net/url"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (c *Client) ListLots(ctx context.Context) ([]entities.ParkingLot, error) {
	var lots []entities.ParkingLot
	if err := c.get(ctx, "/parking-lots", "", &lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (c *Client) GetLot(ctx context.Context, id string) (*entities.ParkingLot, error) {
	var lot entities.ParkingLot
	if err := c.get(ctx, "/parking-lots/"+url.PathEscape(id), "", &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (c *Client) SearchLots(ctx context.Context, req entities.LotSearchRequest) ([]entities.ParkingLot, error) {
	q := url.Values{}
	if req.Location != "" {
		q.Set("location", req.Location)
	}
	if req.Date != "" {
		q.Set("date", req.Date)
	}
	if req.StartTime != "" {
		q.Set("start_time", req.StartTime)
	}
	if req.EndTime != "" {
		q.Set("end_time", req.EndTime)
	}

	path := "/parking-lots/search"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var lots []entities.ParkingLot
	if err := c.get(ctx, path, "", &lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (c *Client) CreateLot(ctx context.Context, token string, req entities.LotRequest) (*entities.ParkingLot, error) {
	var lot entities.ParkingLot
	if err := c.post(ctx, "/parking-lots", token, req, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (c *Client) UpdateLot(ctx context.Context, token, id string, req entities.LotRequest) (*entities.ParkingLot, error) {
	var lot entities.ParkingLot
	if err := c.put(ctx, "/parking-lots/"+url.PathEscape(id), token, req, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (c *Client) DeleteLot(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/parking-lots/"+url.PathEscape(id), token)
}
