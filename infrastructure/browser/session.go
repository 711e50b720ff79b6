package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const defaultOpTimeout = 30 * time.Second

// Session owns one browser process, context and page for the duration
// of a single extraction request.
type Session struct {
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger

	releaseOnce sync.Once
	releaseErr  error
}

// timeoutMs converts the remaining context budget to Playwright's
// millisecond timeouts, capped at the fallback.
func timeoutMs(ctx context.Context, fallback time.Duration) float64 {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < fallback {
			return float64(remaining.Milliseconds())
		}
	}
	return float64(fallback.Milliseconds())
}

// Navigate - navigates to the specified URL and waits for the network
// to go idle.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeoutMs(ctx, defaultOpTimeout)),
	})
	return err
}

// Fill - clears an input field and types a value into it.
func (s *Session) Fill(ctx context.Context, selector string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locator := s.page.Locator(selector)
	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs(ctx, defaultOpTimeout)),
	})
	if err != nil {
		return fmt.Errorf("input field not found: %w", err)
	}
	locator.Clear()
	return locator.Fill(value)
}

// Click - scrolls an element into view and clicks it.
func (s *Session) Click(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locator := s.page.Locator(selector)
	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs(ctx, defaultOpTimeout)),
	})
	if err != nil {
		return fmt.Errorf("element not found or not visible: %w", err)
	}
	if err := locator.First().ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("could not scroll element into view: %w", err)
	}
	return locator.First().Click()
}

// WaitForSelector - waits for an element to become visible.
func (s *Session) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs(ctx, timeout)),
	})
}

// WaitForNetworkIdle - waits for in-flight page requests to settle.
func (s *Session) WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(timeoutMs(ctx, timeout)),
	})
}

// Count - returns the number of elements matching the selector.
func (s *Session) Count(ctx context.Context, selector string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.page.Locator(selector).Count()
}

// Texts - returns the inner text of every matching element.
func (s *Session) Texts(ctx context.Context, selector string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.page.Locator(selector).AllInnerTexts()
}

// Attribute - returns an attribute of the first matching element.
func (s *Session) Attribute(ctx context.Context, selector string, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, err := s.page.Locator(selector).First().GetAttribute(name)
	if err != nil {
		return "", err
	}
	return value, nil
}

const tableRowsJS = `(sel) => {
	const table = document.querySelector(sel);
	if (!table) return [];
	return Array.from(table.querySelectorAll('tbody tr'))
		.filter(tr => !tr.querySelector('td.dataTables_empty'))
		.map(tr => Array.from(tr.children).map(cell => cell.innerText.trim()));
}`

// TableRows - reads every body row of the matched table as trimmed
// cell texts, skipping the DataTables empty placeholder row.
func (s *Session) TableRows(ctx context.Context, selector string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := s.page.Evaluate(tableRowsJS, selector)
	if err != nil {
		return nil, fmt.Errorf("failed to read table rows: %w", err)
	}

	rowsData, ok := result.([]interface{})
	if !ok {
		return [][]string{}, nil
	}
	rows := make([][]string, 0, len(rowsData))
	for _, rowData := range rowsData {
		cellsData, ok := rowData.([]interface{})
		if !ok {
			continue
		}
		cells := make([]string, 0, len(cellsData))
		for _, cellData := range cellsData {
			if text, ok := cellData.(string); ok {
				cells = append(cells, text)
			} else {
				cells = append(cells, "")
			}
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// Screenshot - writes a full-page screenshot to the given path.
func (s *Session) Screenshot(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// Pause hands the page over to the Playwright Inspector for manual
// selector discovery. Only meaningful on a headful session.
func (s *Session) Pause() error {
	return s.page.Pause()
}

// Release - closes the page, context and browser process. Idempotent;
// safe to call from any exit path, including after a timeout already
// killed the target.
func (s *Session) Release() error {
	s.releaseOnce.Do(func() {
		s.logger.Info("releasing browser session")

		closers := []func() error{
			func() error { return s.page.Close() },
			func() error { return s.context.Close() },
			func() error { return s.browser.Close() },
		}
		for _, close := range closers {
			if err := close(); err != nil && !isAlreadyClosed(err) {
				if s.releaseErr != nil {
					s.releaseErr = fmt.Errorf("%v; %w", s.releaseErr, err)
				} else {
					s.releaseErr = err
				}
			}
		}
	})
	return s.releaseErr
}

func isAlreadyClosed(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}
