package extraction

import (
	"context"
	"fmt"
	"time"

	"pacs_automation/domain/entities"
	"pacs_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const pollInterval = 250 * time.Millisecond

// Authenticator submits credentials to the PACS login form and
// confirms the authenticated state before handing off.
type Authenticator struct {
	logger  *logrus.Logger
	timeout time.Duration
}

// NewAuthenticator - creates new authenticator with a bounded wait per
// login stage.
func NewAuthenticator(logger *logrus.Logger, timeout time.Duration) *Authenticator {
	return &Authenticator{logger: logger, timeout: timeout}
}

// Login fills and submits the login form, then waits for the post-login
// marker: the login form leaving the page. It does not retry; retry
// policy belongs to the caller.
func (a *Authenticator) Login(ctx context.Context, b interfaces.Browser, creds entities.Credentials) error {
	if !creds.Complete() {
		return authenticationError("username and password are required", nil)
	}

	a.logger.WithField("url", loginURL).Info("navigating to login page")
	if err := b.Navigate(ctx, loginURL); err != nil {
		return authenticationError("login page unreachable", err)
	}
	if err := b.WaitForSelector(ctx, selUsernameInput, a.timeout); err != nil {
		return authenticationError("login form did not appear", err)
	}

	a.logger.Info("submitting credentials")
	if err := b.Fill(ctx, selUsernameInput, creds.Username); err != nil {
		return authenticationError("could not fill username field", err)
	}
	if err := b.Fill(ctx, selPasswordInput, creds.Password); err != nil {
		return authenticationError("could not fill password field", err)
	}
	if err := b.Click(ctx, selLoginSubmit); err != nil {
		return authenticationError("could not submit login form", err)
	}

	if err := a.waitForLoginFormGone(ctx, b); err != nil {
		return err
	}
	a.logger.Info("login confirmed")
	return nil
}

func (a *Authenticator) waitForLoginFormGone(ctx context.Context, b interfaces.Browser) error {
	// The login POST keeps connections open on some deployments, so the
	// idle wait is advisory; the poll below decides.
	_ = b.WaitForNetworkIdle(ctx, a.timeout)

	deadline := time.Now().Add(a.timeout)
	for {
		n, err := b.Count(ctx, selUsernameInput)
		if err == nil && n == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return authenticationError(
				fmt.Sprintf("login form still present after %s, credentials rejected or login screen unresponsive", a.timeout), nil)
		}
		select {
		case <-ctx.Done():
			return authenticationError("login wait canceled", ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}
