package entities

import "time"

type ParkingLot struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	TotalSpots int       `json:"total_spots"`
	HourlyRate float64   `json:"hourly_rate"`
	Images     []string  `json:"images,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

type LotSearchRequest struct {
	Location  string `json:"location"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type LotRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	TotalSpots int      `json:"total_spots"`
	HourlyRate float64  `json:"hourly_rate"`
	Images     []string `json:"images,omitempty"`
}
