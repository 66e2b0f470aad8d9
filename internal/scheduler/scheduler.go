package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/NQvelo/weather-app/internal/store"
	"github.com/NQvelo/weather-app/internal/weather"
)

// Scheduler periodically re-fetches weather for the configured cities
// and updates the snapshot cache. Cities are refreshed one at a time;
// each refresh is an independent aggregation.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	store     *store.MemoryStore
	cities    []string
	interval  time.Duration
	timeout   time.Duration
}

func New(cities []string, interval, timeout time.Duration, service *weather.Service, st *store.MemoryStore) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		store:     st,
		cities:    cities,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic refresh job.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running weather refresh job")
		for _, city := range s.cities {
			s.refresh(city)
		}
		log.Println("scheduler: completed weather refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refresh(city string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snap, err := s.service.GetWeatherInfo(ctx, city)
	if err != nil {
		// Keep the last good snapshot on failure.
		log.Printf("scheduler: refresh failed for %q: %v", city, err)
		return
	}
	s.store.Save(city, *snap)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
