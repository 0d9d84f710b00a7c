package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/campus-events-backend/internal/models"
)

func TestSummary(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{
				{ID: 1, Date: past, Category: models.CategoryWorkshop},
				{ID: 2, Date: future, Category: models.CategorySeminar},
			}, nil
		},
	}
	regRepo := &mockRegistrationRepo{
		countByEventFn: func(eventID uint) (int64, error) {
			if eventID == 1 {
				return 10, nil
			}
			return 5, nil
		},
	}
	attRepo := &mockAttendanceRepo{
		countByEventFn: func(eventID uint) (int64, error) {
			if eventID == 1 {
				return 8, nil
			}
			return 0, nil
		},
	}
	svc := NewAnalyticsService(eventRepo, regRepo, attRepo)

	summary, err := svc.Summary(1)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalEvents)
	assert.Equal(t, 1, summary.UpcomingEvents)
	assert.Equal(t, 15, summary.TotalRegistrations)
	assert.Equal(t, 8, summary.TotalAttendance)
	assert.Equal(t, 53, summary.AttendanceRate) // round(8/15*100)
}

func TestSummaryNoEvents(t *testing.T) {
	svc := NewAnalyticsService(&mockEventRepo{}, &mockRegistrationRepo{}, &mockAttendanceRepo{})

	summary, err := svc.Summary(1)

	assert.NoError(t, err)
	assert.Zero(t, summary.TotalEvents)
	assert.Zero(t, summary.AttendanceRate)
}

func TestTrends(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{{ID: 1}}, nil
		},
	}
	yesterday := time.Now().AddDate(0, 0, -1)
	regRepo := &mockRegistrationRepo{
		getByEventsFn: func(eventIDs []uint) ([]models.Registration, error) {
			return []models.Registration{
				{ID: 1, EventID: 1, CreatedAt: yesterday},
				{ID: 2, EventID: 1, CreatedAt: yesterday},
				{ID: 3, EventID: 1, CreatedAt: time.Now().AddDate(0, 0, -60)}, // outside the window
			}, nil
		},
	}
	svc := NewAnalyticsService(eventRepo, regRepo, &mockAttendanceRepo{})

	trends, err := svc.Trends(1)

	assert.NoError(t, err)
	assert.Len(t, trends, 30)

	total := 0
	for _, day := range trends {
		total += day.Count
		if day.Date == yesterday.Format("2006-01-02") {
			assert.Equal(t, 2, day.Count)
			assert.Equal(t, yesterday.Format("Jan 2"), day.Label)
		}
	}
	assert.Equal(t, 2, total)

	for i := 1; i < len(trends); i++ {
		assert.Less(t, trends[i-1].Date, trends[i].Date)
	}
}

func TestTrendsNoEvents(t *testing.T) {
	svc := NewAnalyticsService(&mockEventRepo{}, &mockRegistrationRepo{}, &mockAttendanceRepo{})

	trends, err := svc.Trends(1)

	assert.NoError(t, err)
	assert.Empty(t, trends)
}

func TestCategoryStats(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{
				{ID: 1, Category: models.CategoryWorkshop},
				{ID: 2, Category: models.CategoryWorkshop},
				{ID: 3, Category: models.CategorySports},
			}, nil
		},
	}
	regRepo := &mockRegistrationRepo{
		countByEventFn: func(eventID uint) (int64, error) { return 4, nil },
	}
	svc := NewAnalyticsService(eventRepo, regRepo, &mockAttendanceRepo{})

	stats, err := svc.CategoryStats(1)

	assert.NoError(t, err)
	assert.Len(t, stats, 2) // only categories with events

	assert.Equal(t, models.CategoryWorkshop, stats[0].Category)
	assert.Equal(t, 2, stats[0].EventCount)
	assert.Equal(t, 8, stats[0].RegistrationCount)
	assert.Equal(t, "#8B5CF6", stats[0].Color)

	assert.Equal(t, models.CategorySports, stats[1].Category)
	assert.Equal(t, "#10B981", stats[1].Color)
}

func TestAttendanceRates(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{
				{ID: 1, Title: "Older", Date: "2026-03-01"},
				{ID: 2, Title: "Newer", Date: "2026-06-01"},
			}, nil
		},
	}
	regRepo := &mockRegistrationRepo{
		countByEventFn: func(eventID uint) (int64, error) {
			if eventID == 1 {
				return 3, nil
			}
			return 0, nil
		},
	}
	attRepo := &mockAttendanceRepo{
		countByEventFn: func(eventID uint) (int64, error) {
			if eventID == 1 {
				return 2, nil
			}
			return 0, nil
		},
	}
	svc := NewAnalyticsService(eventRepo, regRepo, attRepo)

	rates, err := svc.AttendanceRates(1)

	assert.NoError(t, err)
	assert.Len(t, rates, 2)
	// Most recent event first.
	assert.Equal(t, "Newer", rates[0].Title)
	assert.Zero(t, rates[0].Rate) // no registrations, rate stays zero
	assert.Equal(t, "Older", rates[1].Title)
	assert.Equal(t, 67, rates[1].Rate)
}

func TestPeakTimes(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{{ID: 1}}, nil
		},
	}
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 20, hour, 30, 0, 0, time.Local)
	}
	regRepo := &mockRegistrationRepo{
		getByEventsFn: func(eventIDs []uint) ([]models.Registration, error) {
			return []models.Registration{
				{ID: 1, CreatedAt: at(14)},
				{ID: 2, CreatedAt: at(14)},
				{ID: 3, CreatedAt: at(14)},
				{ID: 4, CreatedAt: at(9)},
			}, nil
		},
	}
	svc := NewAnalyticsService(eventRepo, regRepo, &mockAttendanceRepo{})

	peaks, err := svc.PeakTimes(1)

	assert.NoError(t, err)
	assert.Len(t, peaks, 24)
	assert.Equal(t, "14:00", peaks[14].Label)
	assert.Equal(t, 3, peaks[14].Count)
	assert.Equal(t, 100, peaks[14].Percentage)
	assert.Equal(t, 33, peaks[9].Percentage) // round(1/3*100)
	assert.Zero(t, peaks[0].Count)
	assert.Zero(t, peaks[0].Percentage)
}

func TestPeakTimesNoRegistrations(t *testing.T) {
	eventRepo := &mockEventRepo{
		getByOrganizerFn: func(organizerID uint) ([]models.Event, error) {
			return []models.Event{{ID: 1}}, nil
		},
	}
	svc := NewAnalyticsService(eventRepo, &mockRegistrationRepo{}, &mockAttendanceRepo{})

	peaks, err := svc.PeakTimes(1)

	assert.NoError(t, err)
	assert.Len(t, peaks, 24)
	for _, peak := range peaks {
		assert.Zero(t, peak.Count)
		assert.Zero(t, peak.Percentage)
	}
}
