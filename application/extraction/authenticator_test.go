package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"pacs_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorLoginSuccess(t *testing.T) {
	fake := newFakeBrowser()
	auth := NewAuthenticator(testLogger(), 500*time.Millisecond)

	err := auth.Login(context.Background(), fake, entities.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)

	assert.Equal(t, []string{loginURL}, fake.navigated)
	assert.Equal(t, "u", fake.filled[selUsernameInput])
	assert.Equal(t, "p", fake.filled[selPasswordInput])
	assert.Contains(t, fake.clicked, selLoginSubmit)
}

func TestAuthenticatorLoginFormPersists(t *testing.T) {
	fake := newFakeBrowser()
	// Login form never leaves the page: wrong credentials or an
	// unresponsive login screen.
	fake.counts[selUsernameInput] = 1
	auth := NewAuthenticator(testLogger(), 100*time.Millisecond)

	err := auth.Login(context.Background(), fake, entities.Credentials{Username: "u", Password: "wrong"})
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepLogin, stepErr.Step)
	assert.Equal(t, KindAuthentication, stepErr.Kind)
	assert.Contains(t, err.Error(), "authentication")
}

func TestAuthenticatorLoginPageUnreachable(t *testing.T) {
	fake := newFakeBrowser()
	fake.navErr[loginURL] = errors.New("net::ERR_CONNECTION_TIMED_OUT")
	auth := NewAuthenticator(testLogger(), 100*time.Millisecond)

	err := auth.Login(context.Background(), fake, entities.Credentials{Username: "u", Password: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication")
	assert.Contains(t, err.Error(), "login page unreachable")
}

func TestAuthenticatorIncompleteCredentials(t *testing.T) {
	fake := newFakeBrowser()
	auth := NewAuthenticator(testLogger(), 100*time.Millisecond)

	err := auth.Login(context.Background(), fake, entities.Credentials{Username: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username and password are required")
	// Nothing touched the page.
	assert.Empty(t, fake.navigated)
}

func TestAuthenticatorLoginFormNeverAppears(t *testing.T) {
	fake := newFakeBrowser()
	fake.waitErr[selUsernameInput] = errors.New("timeout 100ms exceeded")
	auth := NewAuthenticator(testLogger(), 100*time.Millisecond)

	err := auth.Login(context.Background(), fake, entities.Credentials{Username: "u", Password: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login form did not appear")
}
