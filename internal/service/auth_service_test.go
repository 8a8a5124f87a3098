package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localconnect/models"
)

func TestLoginCustomer(t *testing.T) {
	svc := NewAuthService(testLogger())

	session, err := svc.Login("customer", "pass", models.UserCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.UserCustomer, session.User.Type)
	assert.Equal(t, models.ThemeLight, session.Theme)
	assert.Equal(t, models.LanguageEnglish, session.Language)
}

func TestLoginVendorBoundToLocation(t *testing.T) {
	svc := NewAuthService(testLogger())

	cases := map[string]models.VendorLocation{
		"vendorR": models.LocationRoyapuram,
		"vendorT": models.LocationTNagar,
		"vendorA": models.LocationAshokNagar,
		"vendorS": models.LocationSaidapetu,
	}
	for username, location := range cases {
		session, err := svc.Login(username, "pass", models.UserVendor)
		require.NoError(t, err, username)
		assert.Equal(t, location, session.User.Location)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testLogger())

	_, err := svc.Login("customer", "wrong", models.UserCustomer)
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = svc.Login("vendorR", "pass", models.UserCustomer)
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = svc.Login("stranger", "pass", models.UserVendor)
	assert.ErrorContains(t, err, "invalid credentials")

	_, err = svc.Login("", "pass", models.UserCustomer)
	assert.ErrorContains(t, err, "required")
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewAuthService(testLogger())

	session, err := svc.Login("customer", "pass", models.UserCustomer)
	require.NoError(t, err)

	got, err := svc.GetSession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "customer", got.User.Name)

	require.NoError(t, svc.Logout(session.Token))
	_, err = svc.GetSession(session.Token)
	assert.ErrorContains(t, err, "invalid session")

	// Logging out twice is harmless
	assert.NoError(t, svc.Logout(session.Token))
}

func TestPreferenceUpdates(t *testing.T) {
	svc := NewAuthService(testLogger())

	session, err := svc.Login("customer", "pass", models.UserCustomer)
	require.NoError(t, err)

	updated, err := svc.SetTheme(session.Token, models.ThemeForest)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeForest, updated.Theme)

	updated, err = svc.SetLanguage(session.Token, models.LanguageTamil)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageTamil, updated.Language)

	// Preferences stick on the session
	got, err := svc.GetSession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeForest, got.Theme)
	assert.Equal(t, models.LanguageTamil, got.Language)

	_, err = svc.SetTheme(session.Token, "neon")
	assert.ErrorContains(t, err, "unknown theme")

	_, err = svc.SetLanguage(session.Token, "fr")
	assert.ErrorContains(t, err, "unknown language")

	_, err = svc.SetTheme("bad-token", models.ThemeDark)
	assert.ErrorContains(t, err, "invalid session")
}
