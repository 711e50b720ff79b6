package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pacs_automation/domain/entities"
	"pacs_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// DefaultMaxPages bounds the pagination walk so a broken next-page
// control cannot loop forever.
const DefaultMaxPages = 50

// TableExtractor reads the rendered results table row by row, mapping
// cells positionally onto record fields, across every pagination page.
type TableExtractor struct {
	logger   *logrus.Logger
	timeout  time.Duration
	maxPages int
}

// NewTableExtractor - creates new table extractor.
func NewTableExtractor(logger *logrus.Logger, timeout time.Duration, maxPages int) *TableExtractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &TableExtractor{logger: logger, timeout: timeout, maxPages: maxPages}
}

// ExtractRows waits for the table to be populated or legitimately
// empty, then collects every row in document order. Any row whose cell
// count deviates from the column map fails the whole extraction.
func (t *TableExtractor) ExtractRows(ctx context.Context, b interfaces.Browser) ([]entities.ExtractedRecord, error) {
	empty, err := t.waitForTable(ctx, b)
	if err != nil {
		return nil, err
	}
	if empty {
		t.logger.Info("results table is empty")
		return []entities.ExtractedRecord{}, nil
	}

	records := []entities.ExtractedRecord{}
	rowIndex := 0
	for page := 1; ; page++ {
		rows, err := b.TableRows(ctx, selResultsTable)
		if err != nil {
			return nil, extractionTimeoutError("could not read table rows", err)
		}
		t.logger.WithFields(logrus.Fields{"page": page, "rows": len(rows)}).Info("reading table page")

		for _, cells := range rows {
			if len(cells) != len(columnFields) {
				return nil, rowShapeError(rowIndex, len(cells), len(columnFields))
			}
			records = append(records, recordFromCells(cells))
			rowIndex++
		}

		more, err := t.hasNextPage(ctx, b)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		if page >= t.maxPages {
			return nil, extractionTimeoutError(
				fmt.Sprintf("pagination did not terminate within %d pages", t.maxPages), nil)
		}
		if err := t.advancePage(ctx, b); err != nil {
			return nil, err
		}
	}

	t.logger.WithField("total_rows", len(records)).Info("table extraction finished")
	return records, nil
}

// waitForTable blocks until the table body has rows or the screen shows
// its "no results" placeholder. An empty result set is a legitimate
// outcome, not a failure.
func (t *TableExtractor) waitForTable(ctx context.Context, b interfaces.Browser) (bool, error) {
	deadline := time.Now().Add(t.timeout)
	for {
		if n, err := b.Count(ctx, selEmptyMarker); err == nil && n > 0 {
			return true, nil
		}
		if n, err := b.Count(ctx, selTableBodyRows); err == nil && n > 0 {
			return false, nil
		}
		if time.Now().After(deadline) {
			return false, extractionTimeoutError(
				fmt.Sprintf("results table did not reach a readable state within %s", t.timeout), nil)
		}
		select {
		case <-ctx.Done():
			return false, extractionTimeoutError("table wait canceled", ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

// hasNextPage checks the DataTables pagination control. Absent control
// or a disabled next button means the last page was reached.
func (t *TableExtractor) hasNextPage(ctx context.Context, b interfaces.Browser) (bool, error) {
	n, err := b.Count(ctx, selPaginationNext)
	if err != nil || n == 0 {
		return false, nil
	}
	class, err := b.Attribute(ctx, selPaginationNext, "class")
	if err == nil && (strings.Contains(class, "disabled") || strings.Contains(class, "inactive")) {
		return false, nil
	}
	return true, nil
}

func (t *TableExtractor) advancePage(ctx context.Context, b interfaces.Browser) error {
	if err := b.Click(ctx, selPaginationNext); err != nil {
		return extractionTimeoutError("could not advance to the next table page", err)
	}
	_ = b.WaitForNetworkIdle(ctx, t.timeout)
	return nil
}
