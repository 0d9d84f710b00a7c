package models

// Analytics result shapes. All values are computed on demand from raw rows;
// nothing here is persisted.

type AnalyticsSummary struct {
	TotalEvents        int `json:"total_events"`
	TotalRegistrations int `json:"total_registrations"`
	TotalAttendance    int `json:"total_attendance"`
	AttendanceRate     int `json:"attendance_rate"`
	UpcomingEvents     int `json:"upcoming_events"`
}

type DailyTrend struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Label string `json:"label"` // e.g. "Aug 28"
}

type CategoryStat struct {
	Category          string `json:"category"`
	EventCount        int    `json:"event_count"`
	RegistrationCount int    `json:"registration_count"`
	Color             string `json:"color"`
}

type EventAttendanceRate struct {
	EventID       uint   `json:"event_id"`
	Title         string `json:"title"`
	Registrations int    `json:"registrations"`
	Attendance    int    `json:"attendance"`
	Rate          int    `json:"rate"`
	Date          string `json:"date"`
}

type PeakHour struct {
	Hour       int    `json:"hour"`
	Count      int    `json:"count"`
	Label      string `json:"label"` // "HH:00"
	Percentage int    `json:"percentage"`
}
