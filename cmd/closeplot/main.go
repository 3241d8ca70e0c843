package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ClosePlot/internal/collector"
	"ClosePlot/internal/config"
	"ClosePlot/internal/renderer"
	"ClosePlot/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ClosePlot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher, err := collector.NewHTTPFetcher(cfg.Proxy)
	if err != nil {
		log.Fatalf("[FATAL] init fetcher: %v", err)
	}
	log.Printf("[INFO] data source: %s %s", fetcher.Name(), cfg.Source.URL)

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Source.URL, cfg.Source.Symbol)
	col.Column = *cfg.Source.CloseColumn
	col.Missing = cfg.Source.MissingValue

	// Init renderer
	rnd, err := renderer.New(cfg.Chart.Output, renderer.Options{
		YLabel:    cfg.Chart.YLabel,
		Title:     cfg.Chart.Title,
		WidthIn:   cfg.Chart.WidthIn,
		HeightIn:  cfg.Chart.HeightIn,
		LineColor: cfg.Chart.LineColor,
		SMAPeriod: cfg.Chart.SMAPeriod,
	})
	if err != nil {
		log.Fatalf("[FATAL] init renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, rnd)

	// First run: any fetch or row-shape failure ends the process.
	if _, err := sched.RunNow(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	var viewer renderer.Viewer = renderer.BrowserViewer{}
	if err := viewer.Open(rnd.Output); err != nil {
		log.Printf("[WARN] open chart viewer: %v", err)
	}

	if cfg.Schedule.RefreshCron != "" {
		if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
			log.Fatalf("[FATAL] register refresh task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	log.Println("[INFO] chart is open. Press Ctrl+C to close.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, closing...")
	cancel()
}
