package model

// DashboardStats holds the headline figures shown on the dashboard for
// a selected reporting month.
type DashboardStats struct {
	AvailableRooms  int     `json:"availableRooms"`
	TotalRooms      int     `json:"totalRooms"`
	RentDueToday    int     `json:"rentDueToday"`
	TotalCollection float64 `json:"totalCollectionForMonth"`
}

// MonthlyData is one bucket of the due-vs-collected time series.  Name
// is a human label like "Jan '24"; buckets are sorted by calendar date.
type MonthlyData struct {
	Name      string  `json:"name"`
	Collected float64 `json:"collected"`
	Due       float64 `json:"due"`
}
