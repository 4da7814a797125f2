package backend

import (
	"context"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/entities"
)

func (c *Client) CompanySummary(ctx context.Context, token string) (*entities.CompanySummary, error) {
	var summary entities.CompanySummary
	if err := c.get(ctx, "/analytics/company/summary", token, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) RevenueChart(ctx context.Context, token string) ([]entities.RevenuePoint, error) {
	var points []entities.RevenuePoint
	if err := c.get(ctx, "/analytics/company/revenue-chart", token, &points); err != nil {
		return nil, err
	}
	return points, nil
}
