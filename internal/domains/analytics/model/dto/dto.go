package dto

// DashboardResponse is the landing-page aggregate: headline counts plus
// per-enum tallies, all derived server-side in one pass per collection.
type DashboardResponse struct {
	TotalGuests         int            `json:"total_guests"`
	TotalRooms          int            `json:"total_rooms"`
	TotalBookings       int            `json:"total_bookings"`
	OccupancyRate       float64        `json:"occupancy_rate"`
	AverageStayNights   float64        `json:"average_stay_nights"`
	RevenueTotal        float64        `json:"revenue_total"`
	RevenueThisMonth    float64        `json:"revenue_this_month"`
	RoomStatusCounts    map[string]int `json:"room_status_counts"`
	BookingStatusCounts map[string]int `json:"booking_status_counts"`
	StaffRoleCounts     map[string]int `json:"staff_role_counts"`
	TaskStatusCounts    map[string]int `json:"task_status_counts"`
}

type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Payments int     `json:"payments"`
}

type AdminPanelResponse struct {
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	RevenueTotal   float64          `json:"revenue_total"`
	PaymentCount   int              `json:"payment_count"`
}

type ExportRevenueResponse struct {
	URL string `json:"url"`
}
