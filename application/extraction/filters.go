package extraction

import (
	"context"
	"strings"
	"time"

	"pacs_automation/domain/entities"
	"pacs_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// FilterApplicator sets the requested dropdown filters on the totem
// screen and triggers the table refresh. Filters left empty or at
// their placeholder keep the page's default selection.
type FilterApplicator struct {
	logger  *logrus.Logger
	timeout time.Duration
}

// NewFilterApplicator - creates new filter applicator.
func NewFilterApplicator(logger *logrus.Logger, timeout time.Duration) *FilterApplicator {
	return &FilterApplicator{logger: logger, timeout: timeout}
}

// Apply selects every requested filter option and refreshes the
// results. With nothing requested it is a no-op that still confirms
// the table is rendered.
func (f *FilterApplicator) Apply(ctx context.Context, b interfaces.Browser, opts *entities.FilterOptions) error {
	selections := opts.Requested()
	if len(selections) == 0 {
		if err := b.WaitForSelector(ctx, selResultsTable, f.timeout); err != nil {
			return &StepError{
				Step:   StepFilter,
				Kind:   KindNavigation,
				Detail: "results table not rendered",
				Err:    err,
			}
		}
		return nil
	}

	for _, sel := range selections {
		if err := f.applyOne(ctx, b, sel); err != nil {
			return err
		}
	}

	f.logger.Info("triggering results refresh")
	if err := b.Click(ctx, selFilterButton); err != nil {
		return &StepError{
			Step:   StepFilter,
			Kind:   KindNavigation,
			Detail: "filter button not clickable",
			Err:    err,
		}
	}
	_ = b.WaitForNetworkIdle(ctx, f.timeout)
	if err := b.WaitForSelector(ctx, selResultsTable, f.timeout); err != nil {
		return &StepError{
			Step:   StepFilter,
			Kind:   KindNavigation,
			Detail: "results table did not re-render after refresh",
			Err:    err,
		}
	}
	return nil
}

func (f *FilterApplicator) applyOne(ctx context.Context, b interfaces.Browser, sel entities.FilterSelection) error {
	ctl, ok := filterControls[sel.Name]
	if !ok {
		return filterNotFoundError(sel.Name, sel.Value)
	}

	f.logger.WithFields(logrus.Fields{
		"filter": sel.Name,
		"option": sel.Value,
	}).Info("applying filter")

	if err := b.Click(ctx, ctl.trigger); err != nil {
		return filterDriftError(sel.Name, "control not interactable", err)
	}
	labels, err := b.Texts(ctx, ctl.options)
	if err != nil {
		return filterDriftError(sel.Name, "could not list options", err)
	}
	if !hasOption(labels, sel.Value) {
		return filterNotFoundError(sel.Name, sel.Value)
	}
	if err := b.Click(ctx, ctl.option(sel.Value)); err != nil {
		return filterDriftError(sel.Name, "option not clickable", err)
	}
	return nil
}

// hasOption matches the way :has-text() does: substring, after
// trimming the rendered label.
func hasOption(labels []string, value string) bool {
	for _, label := range labels {
		if strings.Contains(strings.TrimSpace(label), value) {
			return true
		}
	}
	return false
}
