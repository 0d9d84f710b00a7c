package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
)

// Analytics are computed by rescanning raw rows on every call. Fine at
// campus scale; nothing is materialized.
type AnalyticsService struct {
	eventRepo repository.EventRepository
	regRepo   repository.RegistrationRepository
	attRepo   repository.AttendanceRepository
}

func NewAnalyticsService(eventRepo repository.EventRepository, regRepo repository.RegistrationRepository, attRepo repository.AttendanceRepository) *AnalyticsService {
	return &AnalyticsService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		attRepo:   attRepo,
	}
}

var categoryColors = map[string]string{
	models.CategoryWorkshop:  "#8B5CF6",
	models.CategorySeminar:   "#3B82F6",
	models.CategorySports:    "#10B981",
	models.CategoryCultural:  "#F59E0B",
	models.CategoryTechnical: "#EF4444",
	models.CategorySocial:    "#EC4899",
}

func (s *AnalyticsService) Summary(organizerID uint) (*models.AnalyticsSummary, error) {
	events, err := s.eventRepo.GetByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return &models.AnalyticsSummary{}, nil
	}

	today := time.Now().Format("2006-01-02")
	summary := &models.AnalyticsSummary{TotalEvents: len(events)}

	for _, event := range events {
		if event.Date >= today {
			summary.UpcomingEvents++
		}

		regs, err := s.regRepo.CountByEvent(event.ID)
		if err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		atts, err := s.attRepo.CountByEvent(event.ID)
		if err != nil {
			return nil, fmt.Errorf("count attendance: %w", err)
		}

		summary.TotalRegistrations += int(regs)
		summary.TotalAttendance += int(atts)
	}

	summary.AttendanceRate = rate(summary.TotalAttendance, summary.TotalRegistrations)
	return summary, nil
}

// Trends buckets registrations by creation day over the trailing 30 days,
// zero-filling quiet days.
func (s *AnalyticsService) Trends(organizerID uint) ([]models.DailyTrend, error) {
	regs, err := s.organizerRegistrations(organizerID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		return []models.DailyTrend{}, nil
	}

	now := time.Now()
	start := now.AddDate(0, 0, -30)

	counts := make(map[string]int, 30)
	order := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		counts[day] = 0
		order = append(order, day)
	}

	for _, reg := range regs {
		day := reg.CreatedAt.Format("2006-01-02")
		if _, ok := counts[day]; ok {
			counts[day]++
		}
	}

	trends := make([]models.DailyTrend, 0, len(order))
	for _, day := range order {
		t, _ := time.Parse("2006-01-02", day)
		trends = append(trends, models.DailyTrend{
			Date:  day,
			Count: counts[day],
			Label: t.Format("Jan 2"),
		})
	}

	return trends, nil
}

// CategoryStats reports per-category event and registration counts; only
// categories with any activity are returned.
func (s *AnalyticsService) CategoryStats(organizerID uint) ([]models.CategoryStat, error) {
	events, err := s.eventRepo.GetByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return []models.CategoryStat{}, nil
	}

	stats := make([]models.CategoryStat, 0, len(models.EventCategories()))
	for _, category := range models.EventCategories() {
		eventCount := 0
		registrationCount := 0

		for _, event := range events {
			if event.Category != category {
				continue
			}
			eventCount++

			regs, err := s.regRepo.CountByEvent(event.ID)
			if err != nil {
				return nil, fmt.Errorf("count registrations: %w", err)
			}
			registrationCount += int(regs)
		}

		if eventCount > 0 || registrationCount > 0 {
			stats = append(stats, models.CategoryStat{
				Category:          category,
				EventCount:        eventCount,
				RegistrationCount: registrationCount,
				Color:             categoryColors[category],
			})
		}
	}

	return stats, nil
}

func (s *AnalyticsService) AttendanceRates(organizerID uint) ([]models.EventAttendanceRate, error) {
	events, err := s.eventRepo.GetByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return []models.EventAttendanceRate{}, nil
	}

	stats := make([]models.EventAttendanceRate, 0, len(events))
	for _, event := range events {
		regs, err := s.regRepo.CountByEvent(event.ID)
		if err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		atts, err := s.attRepo.CountByEvent(event.ID)
		if err != nil {
			return nil, fmt.Errorf("count attendance: %w", err)
		}

		stats = append(stats, models.EventAttendanceRate{
			EventID:       event.ID,
			Title:         event.Title,
			Registrations: int(regs),
			Attendance:    int(atts),
			Rate:          rate(int(atts), int(regs)),
			Date:          event.Date,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})

	return stats, nil
}

// PeakTimes builds a 24-bucket histogram of registration creation hours,
// with each bucket's percentage relative to the busiest hour.
func (s *AnalyticsService) PeakTimes(organizerID uint) ([]models.PeakHour, error) {
	regs, err := s.organizerRegistrations(organizerID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		return []models.PeakHour{}, nil
	}

	var hourly [24]int
	for _, reg := range regs {
		hourly[reg.CreatedAt.Hour()]++
	}

	max := 1
	for _, count := range hourly {
		if count > max {
			max = count
		}
	}

	peaks := make([]models.PeakHour, 24)
	for hour, count := range hourly {
		peaks[hour] = models.PeakHour{
			Hour:       hour,
			Count:      count,
			Label:      fmt.Sprintf("%02d:00", hour),
			Percentage: int(float64(count)/float64(max)*100 + 0.5),
		}
	}

	return peaks, nil
}

// organizerRegistrations returns nil (not an empty slice) when the
// organizer has no events, so callers can distinguish "no events" from "no
// registrations".
func (s *AnalyticsService) organizerRegistrations(organizerID uint) ([]models.Registration, error) {
	events, err := s.eventRepo.GetByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return nil, nil
	}

	eventIDs := make([]uint, len(events))
	for i, e := range events {
		eventIDs[i] = e.ID
	}

	regs, err := s.regRepo.GetByEvents(eventIDs)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	if regs == nil {
		regs = []models.Registration{}
	}
	return regs, nil
}
