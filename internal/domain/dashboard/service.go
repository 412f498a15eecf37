package dashboard

import (
	"context"
	"math"
	"time"

	"entaltek-sabueso/internal/domain/checkins"
	"entaltek-sabueso/internal/domain/dogs"
)

const DefaultCapacity = 50

// Metrics es el resumen que consume el tablero principal.
type Metrics struct {
	TodayDogs     int     `json:"today_dogs"`
	WeekDogs      int     `json:"week_dogs"`
	MonthDogs     int     `json:"month_dogs"`
	ActiveNow     int     `json:"active_now"`
	TotalDogs     int     `json:"total_dogs"`
	CheckedInDogs int     `json:"checked_in_dogs"`
	AvgStayHours  float64 `json:"avg_stay_hours"`
	OccupancyRate float64 `json:"occupancy_rate"` // porcentaje 0-100
	TotalCapacity int     `json:"total_capacity"`
	DaycareActive int     `json:"daycare_active"`
	HotelActive   int     `json:"hotel_active"`
}

// Service calcula métricas derivadas; consumidor puro de los otros módulos,
// nunca muta nada.
type Service struct {
	checkins *checkins.Service
	dogs     *dogs.Service
	capacity int
	now      func() time.Time
}

func NewService(checkinsSvc *checkins.Service, dogsSvc *dogs.Service, capacity int) *Service {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Service{
		checkins: checkinsSvc,
		dogs:     dogsSvc,
		capacity: capacity,
		now:      time.Now,
	}
}

func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	all, err := s.checkins.List(ctx)
	if err != nil {
		return Metrics{}, err
	}
	allDogs, err := s.dogs.List(ctx)
	if err != nil {
		return Metrics{}, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	m := Metrics{
		TotalDogs:     len(allDogs),
		TotalCapacity: s.capacity,
	}

	var stayTotal time.Duration
	var stayCount int

	for _, c := range all {
		if !c.CheckInTime.Before(startOfDay) {
			m.TodayDogs++
		}
		if c.CheckInTime.After(weekAgo) {
			m.WeekDogs++
		}
		if c.CheckInTime.After(monthAgo) {
			m.MonthDogs++
		}
		if c.Status == checkins.StatusActive {
			m.ActiveNow++
			switch c.ServiceType {
			case checkins.ServiceDaycare:
				m.DaycareActive++
			case checkins.ServiceHotel:
				m.HotelActive++
			}
		}
		if c.Status == checkins.StatusCompleted && c.CheckOutTime != nil {
			stayTotal += c.CheckOutTime.Sub(c.CheckInTime)
			stayCount++
		}
	}

	for _, d := range allDogs {
		if d.Status == dogs.StatusCheckedIn {
			m.CheckedInDogs++
		}
	}

	if stayCount > 0 {
		hours := stayTotal.Hours() / float64(stayCount)
		m.AvgStayHours = math.Round(hours*10) / 10
	}
	m.OccupancyRate = math.Round(float64(m.ActiveNow)/float64(s.capacity)*1000) / 10

	return m, nil
}
