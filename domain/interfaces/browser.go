package interfaces

import (
	"context"
	"time"
)

// Browser is the page-interaction surface the extraction workflow is
// written against. Selectors use the Playwright selector syntax
// (CSS plus extensions such as :has-text()).
type Browser interface {
	// Navigate loads a URL and waits for the network to go idle.
	Navigate(ctx context.Context, url string) error

	// Fill clears an input and types a value into it.
	Fill(ctx context.Context, selector string, value string) error

	// Click scrolls an element into view and clicks it.
	Click(ctx context.Context, selector string) error

	// WaitForSelector waits until an element is visible, or fails
	// after the given timeout.
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error

	// WaitForNetworkIdle waits for in-flight page requests to settle.
	WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error

	// Count returns the number of elements matching the selector.
	Count(ctx context.Context, selector string) (int, error)

	// Texts returns the inner text of every element matching the selector.
	Texts(ctx context.Context, selector string) ([]string, error)

	// Attribute returns an attribute of the first matching element.
	// A missing attribute yields an empty string.
	Attribute(ctx context.Context, selector string, name string) (string, error)

	// TableRows returns the cell texts of every body row of the table
	// matched by the selector, in document order. Placeholder rows
	// (e.g. a DataTables "empty" row) are excluded.
	TableRows(ctx context.Context, selector string) ([][]string, error)

	// Screenshot writes a full-page screenshot to the given path.
	Screenshot(ctx context.Context, path string) error
}
