package report

// Occupancy is a point-in-time snapshot of room usage.
type Occupancy struct {
	TotalRooms         int     `json:"total_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	ActiveReservations int     `json:"active_reservations"`
}

// Revenue sums settled billing amounts.
type Revenue struct {
	TotalRevenue   float64 `json:"total_revenue"`
	CompletedBills int     `json:"completed_bills"`
	PendingBills   int     `json:"pending_bills"`
}
