package inspector

import (
	"context"
	"fmt"
	"time"

	"pacs_automation/application/extraction"
	"pacs_automation/domain/entities"
	"pacs_automation/infrastructure/browser"
	"pacs_automation/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// Run opens a visible browser, performs the production login and
// navigation, then hands the page to the Playwright Inspector for
// manual selector discovery. It performs no extraction and produces no
// envelope; this is a diagnostic aid for page-structure drift.
func Run(ctx context.Context, driver *browser.Driver, creds entities.Credentials, stepTimeout time.Duration, logger *logrus.Logger) error {
	if !creds.Complete() {
		return fmt.Errorf("inspector needs %s and %s set in the environment", config.EnvUsername, config.EnvPassword)
	}

	session, err := driver.Acquire(ctx, entities.ViewportConfig{
		Width:    800,
		Height:   600,
		Headless: false,
	})
	if err != nil {
		return fmt.Errorf("failed to open inspection session: %w", err)
	}
	defer session.Release()

	auth := extraction.NewAuthenticator(logger, stepTimeout)
	if err := auth.Login(ctx, session, creds); err != nil {
		return err
	}
	navigator := extraction.NewNavigator(logger, stepTimeout)
	if err := navigator.GoToResultsScreen(ctx, session); err != nil {
		return err
	}

	logger.Info("inspector active: pick selectors in the Playwright window, resume to exit")
	pausable, ok := session.(*browser.Session)
	if !ok {
		return fmt.Errorf("session does not support the inspector")
	}
	return pausable.Pause()
}
