package models

// DailyStatusRow is the per-resident projection for the dashboard: whether a
// daily report exists for the target date and, if so, which one.
type DailyStatusRow struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	ReportID *int64 `json:"report_id"`
	HasDaily bool   `json:"has_daily"`
}

// DailyStatusResponse is the envelope for /api/dashboard/daily-status. Date
// echoes the explicit query date and is null when the facility-timezone
// default was used.
type DailyStatusResponse struct {
	Date  *string          `json:"date"`
	Count int              `json:"count"`
	Data  []DailyStatusRow `json:"data"`
}
