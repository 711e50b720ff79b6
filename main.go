package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"pacs_automation/application/extraction"
	"pacs_automation/infrastructure/browser"
	"pacs_automation/infrastructure/config"
	"pacs_automation/presentation/api"
	"pacs_automation/presentation/inspector"

	"github.com/sirupsen/logrus"
)

func main() {
	inspect := flag.Bool("inspect", false, "open a visible browser with the Playwright Inspector instead of serving the API")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	driver, err := browser.NewDriver(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize browser driver: %v\n", err)
		os.Exit(1)
	}
	defer driver.Stop()

	if *inspect {
		if err := inspector.Run(context.Background(), driver, cfg.DefaultCredentials, cfg.StepTimeout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Inspector error: %v\n", err)
			driver.Stop()
			os.Exit(1)
		}
		return
	}

	orchestrator := extraction.NewOrchestrator(driver, logger, extraction.Config{
		StepTimeout:   cfg.StepTimeout,
		ScreenshotDir: cfg.ScreenshotDir,
	})

	// Worst case for one request: every step spends its full budget,
	// plus teardown margin.
	requestTimeout := 5*cfg.StepTimeout + 10*time.Second
	server := api.NewServer(orchestrator, logger, cfg.DefaultCredentials, cfg.Headless, requestTimeout)

	logger.WithField("addr", cfg.ListenAddr).Info("serving extraction API")
	if err := http.ListenAndServe(cfg.ListenAddr, server.Routes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// os.Exit skips the deferred Stop.
		driver.Stop()
		os.Exit(1)
	}
}
