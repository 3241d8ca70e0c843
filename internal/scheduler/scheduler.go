package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"ClosePlot/internal/calculator"
	"ClosePlot/internal/collector"
	"ClosePlot/internal/model"
	"ClosePlot/internal/renderer"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the fetch, parse and render pipeline, once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Renderer  *renderer.Renderer
	Ctx       context.Context

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, r *renderer.Renderer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Renderer:  r,
		Ctx:       ctx,
	}
}

// Register adds a refresh task that re-runs the pipeline on spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow fetches, parses and renders the chart once.
func (s *Scheduler) RunNow() (*model.PriceSeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	series, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	sum := calculator.Summarize(series.Closes)
	log.Printf("[INFO] %s: %d closes, high %.2f, low %.2f, mean %.2f, final %.2f",
		series.Symbol, sum.Count, sum.High, sum.Low, sum.Mean, sum.Final)

	if err := s.Renderer.Render(series); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	log.Printf("[INFO] chart written to %s", s.Renderer.Output)
	return series, nil
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running scheduled refresh")
	if _, err := s.RunNow(); err != nil {
		log.Printf("[ERROR] scheduled refresh: %v", err)
	}
}
