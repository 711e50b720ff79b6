package extraction

import (
	"context"
	"time"

	"pacs_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Navigator brings an authenticated session to the totem arrival
// screen and waits for its defining markers: the results table and the
// filter controls.
type Navigator struct {
	logger  *logrus.Logger
	timeout time.Duration
}

// NewNavigator - creates new navigator.
func NewNavigator(logger *logrus.Logger, timeout time.Duration) *Navigator {
	return &Navigator{logger: logger, timeout: timeout}
}

// GoToResultsScreen navigates to the totem management screen. A marker
// that never appears is the primary signal that the target page
// structure has changed.
func (n *Navigator) GoToResultsScreen(ctx context.Context, b interfaces.Browser) error {
	n.logger.WithField("url", totemURL).Info("navigating to totem arrival screen")
	if err := b.Navigate(ctx, totemURL); err != nil {
		return navigationError("totem screen unreachable", err)
	}
	_ = b.WaitForNetworkIdle(ctx, n.timeout)

	if err := b.WaitForSelector(ctx, selResultsTable, n.timeout); err != nil {
		return navigationError("results table marker missing, page structure may have changed", err)
	}

	// The screen opens with a guichê selection modal; confirm it when present.
	if count, err := b.Count(ctx, selGuicheModalSave); err == nil && count > 0 {
		n.logger.Info("confirming guichê selection modal")
		if err := b.Click(ctx, selGuicheModalSave); err != nil {
			return navigationError("could not confirm guichê selection modal", err)
		}
		_ = b.WaitForNetworkIdle(ctx, n.timeout)
	}

	if err := b.WaitForSelector(ctx, selFilterButton, n.timeout); err != nil {
		return navigationError("filter controls missing, page structure may have changed", err)
	}
	return nil
}
