package browser

import (
	"context"
	"fmt"

	"pacs_automation/domain/entities"
	"pacs_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Driver launches one Chromium process per extraction request through
// a shared Playwright runtime. The runtime is started once at process
// start; sessions are never pooled.
type Driver struct {
	pw     *playwright.Playwright
	logger *logrus.Logger
}

// NewDriver - installs the browser bundle when needed and starts the
// Playwright runtime.
func NewDriver(logger *logrus.Logger) (*Driver, error) {
	opts := &playwright.RunOptions{Verbose: false}
	if err := playwright.Install(opts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	return &Driver{pw: pw, logger: logger}, nil
}

// Acquire spawns a dedicated browser process with its own context and
// page. The returned session must be released exactly once by the
// caller, on every exit path.
func (d *Driver) Acquire(ctx context.Context, viewport entities.ViewportConfig) (interfaces.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	viewport = viewport.WithDefaults()

	d.logger.WithFields(logrus.Fields{
		"headless": viewport.Headless,
		"width":    viewport.Width,
		"height":   viewport.Height,
	}).Info("launching browser session")

	browser, err := d.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(viewport.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  viewport.Width,
			Height: viewport.Height,
		},
	})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(defaultOpTimeout.Milliseconds()))

	return &Session{
		browser: browser,
		context: browserCtx,
		page:    page,
		logger:  d.logger,
	}, nil
}

// Stop tears down the shared Playwright runtime.
func (d *Driver) Stop() error {
	if err := d.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}
