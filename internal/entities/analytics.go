package entities

// CompanySummary and RevenuePoint are display shapes for the company
// dashboard; aggregation happens backend-side. Amounts are in kobo.
type CompanySummary struct {
	TotalBookings    int     `json:"total_bookings"`
	UpcomingBookings int     `json:"upcoming_bookings"`
	ActiveBookings   int     `json:"active_bookings"`
	TotalRevenue     int64   `json:"total_revenue"`
	OccupancyRate    float64 `json:"occupancy_rate"`
}

type RevenuePoint struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
}
