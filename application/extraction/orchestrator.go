package extraction

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"pacs_automation/domain/entities"
	"pacs_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// State is the orchestrator's position in the extraction workflow.
// Progress is one-directional; any step failure drops into StateFailed.
type State string

const (
	StateIdle            State = "idle"
	StateSessionAcquired State = "session_acquired"
	StateAuthenticated   State = "authenticated"
	StateOnResultsScreen State = "on_results_screen"
	StateFiltered        State = "filtered"
	StateExtracted       State = "extracted"
	StateDone            State = "done"
	StateFailed          State = "failed"
)

// DefaultStepTimeout bounds each workflow step.
const DefaultStepTimeout = 30 * time.Second

// Config tunes the workflow.
type Config struct {
	// StepTimeout is the budget for each workflow step. Zero means
	// DefaultStepTimeout.
	StepTimeout time.Duration

	// ScreenshotDir, when set, receives a best-effort screenshot of the
	// page on every failure.
	ScreenshotDir string

	// MaxPages caps the table pagination walk. Zero means DefaultMaxPages.
	MaxPages int
}

// Orchestrator sequences session acquisition, login, navigation,
// filtering and extraction. Every failure is converted into a uniform
// failure envelope, and the acquired session is released on every exit
// path.
type Orchestrator struct {
	driver    interfaces.Driver
	logger    *logrus.Logger
	cfg       Config
	auth      *Authenticator
	navigator *Navigator
	filters   *FilterApplicator
	extractor *TableExtractor
}

// NewOrchestrator - creates new orchestrator wired with its step
// components.
func NewOrchestrator(driver interfaces.Driver, logger *logrus.Logger, cfg Config) *Orchestrator {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}
	return &Orchestrator{
		driver:    driver,
		logger:    logger,
		cfg:       cfg,
		auth:      NewAuthenticator(logger, cfg.StepTimeout),
		navigator: NewNavigator(logger, cfg.StepTimeout),
		filters:   NewFilterApplicator(logger, cfg.StepTimeout),
		extractor: NewTableExtractor(logger, cfg.StepTimeout, cfg.MaxPages),
	}
}

// transition is one edge of the workflow state machine.
type transition struct {
	to  State
	run func(ctx context.Context) error
}

// Run executes one extraction request end to end and always returns a
// well-formed envelope, never a raw fault. Steps never retry within a
// request; request-level retry belongs to the caller.
func (o *Orchestrator) Run(ctx context.Context, creds entities.Credentials, viewport entities.ViewportConfig, filters *entities.FilterOptions) entities.ResultEnvelope {
	if !creds.Complete() {
		return o.fail(nil, StateIdle, authenticationError("username and password are required", nil))
	}

	stepCtx, cancel := context.WithTimeout(ctx, o.cfg.StepTimeout)
	session, err := o.driver.Acquire(stepCtx, viewport.WithDefaults())
	cancel()
	if err != nil {
		return o.fail(nil, StateIdle, launchError(err))
	}
	defer func() {
		if err := session.Release(); err != nil {
			o.logger.WithError(err).Warn("session release reported an error")
		}
	}()
	state := StateSessionAcquired

	var records []entities.ExtractedRecord
	steps := []transition{
		{StateAuthenticated, func(ctx context.Context) error {
			return o.auth.Login(ctx, session, creds)
		}},
		{StateOnResultsScreen, func(ctx context.Context) error {
			return o.navigator.GoToResultsScreen(ctx, session)
		}},
		{StateFiltered, func(ctx context.Context) error {
			return o.filters.Apply(ctx, session, filters)
		}},
		{StateExtracted, func(ctx context.Context) error {
			var err error
			records, err = o.extractor.ExtractRows(ctx, session)
			return err
		}},
	}

	for _, step := range steps {
		stepCtx, cancel := context.WithTimeout(ctx, o.cfg.StepTimeout)
		err := step.run(stepCtx)
		cancel()
		if err != nil {
			return o.fail(session, state, err)
		}
		state = step.to
	}
	state = StateDone

	o.logger.WithFields(logrus.Fields{"state": string(state), "rows": len(records)}).Info("extraction succeeded")
	return entities.NewSuccessEnvelope(records, fmt.Sprintf("extraction succeeded: %d rows", len(records)))
}

// fail logs the terminal state, captures a diagnostic screenshot when
// configured, and builds the failure envelope. Session release is
// handled by Run's deferred cleanup, never here.
func (o *Orchestrator) fail(session interfaces.Session, state State, err error) entities.ResultEnvelope {
	o.logger.WithFields(logrus.Fields{"state": string(state)}).WithError(err).Error("extraction failed")

	if session != nil && o.cfg.ScreenshotDir != "" {
		path := filepath.Join(o.cfg.ScreenshotDir,
			fmt.Sprintf("error_state_%s.png", time.Now().Format("20060102_150405")))
		shotCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if serr := session.Screenshot(shotCtx, path); serr != nil {
			o.logger.WithError(serr).Debug("could not capture failure screenshot")
		} else {
			o.logger.WithField("path", path).Info("failure screenshot saved")
		}
		cancel()
	}

	return entities.NewFailureEnvelope(err.Error())
}
