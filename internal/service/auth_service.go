package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"localconnect/models"
	"localconnect/pkg/logger"
)

// demoPassword is the shared password of the fixed demo accounts.
const demoPassword = "pass"

// vendorAccounts maps the fixed vendor usernames to the stall they manage.
var vendorAccounts = map[string]models.VendorLocation{
	"vendorR": models.LocationRoyapuram,
	"vendorT": models.LocationTNagar,
	"vendorA": models.LocationAshokNagar,
	"vendorS": models.LocationSaidapetu,
}

// Session is an authenticated user plus their UI preferences. Sessions live
// only in memory; a restart logs everyone out.
type Session struct {
	Token    string          `json:"token"`
	User     models.User     `json:"user"`
	Theme    models.Theme    `json:"theme"`
	Language models.Language `json:"language"`
}

type AuthServiceInterface interface {
	Login(username, password string, userType models.UserType) (*Session, error)
	Logout(token string) error
	GetSession(token string) (*Session, error)
	SetTheme(token string, theme models.Theme) (*Session, error)
	SetLanguage(token string, language models.Language) (*Session, error)
}

// AuthService authenticates the fixed demo accounts and tracks sessions.
// This is deliberately not a real credential store: one customer account and
// one vendor account per stall, all sharing the demo password.
type AuthService struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
	logger   *logger.Logger
}

// NewAuthService creates a new AuthService with the given logger
func NewAuthService(log *logger.Logger) *AuthService {
	return &AuthService{
		sessions: make(map[string]*Session),
		logger:   log.WithComponent("auth_service"),
	}
}

// Login validates the demo credentials and mints a session token. Defaults
// are light theme and English until the user changes them.
func (s *AuthService) Login(username, password string, userType models.UserType) (*Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := s.authenticate(username, password, userType)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "user_type", userType)
		return nil, err
	}

	session := &Session{
		Token:    uuid.New().String(),
		User:     *user,
		Theme:    models.ThemeLight,
		Language: models.LanguageEnglish,
	}

	s.mutex.Lock()
	s.sessions[session.Token] = session
	s.mutex.Unlock()

	s.logger.Info("User logged in", "username", username, "user_type", userType)
	return session, nil
}

// Logout discards the session; an unknown token is not an error
func (s *AuthService) Logout(token string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if session, ok := s.sessions[token]; ok {
		s.logger.Info("User logged out", "username", session.User.Name)
		delete(s.sessions, token)
	}
	return nil
}

// GetSession resolves a token to its session
func (s *AuthService) GetSession(token string) (*Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("invalid session token")
	}
	copied := *session
	return &copied, nil
}

// SetTheme updates the session's theme preference
func (s *AuthService) SetTheme(token string, theme models.Theme) (*Session, error) {
	if !models.IsValidTheme(theme) {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("invalid session token")
	}
	session.Theme = theme
	copied := *session
	return &copied, nil
}

// SetLanguage updates the session's language preference
func (s *AuthService) SetLanguage(token string, language models.Language) (*Session, error) {
	if !models.IsValidLanguage(language) {
		return nil, fmt.Errorf("unknown language %q", language)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("invalid session token")
	}
	session.Language = language
	copied := *session
	return &copied, nil
}

// authenticate checks a username/password pair against the demo accounts
func (s *AuthService) authenticate(username, password string, userType models.UserType) (*models.User, error) {
	if password != demoPassword {
		return nil, fmt.Errorf("invalid credentials")
	}

	switch userType {
	case models.UserCustomer:
		if username != "customer" {
			return nil, fmt.Errorf("invalid credentials")
		}
		return &models.User{Name: username, Type: models.UserCustomer}, nil
	case models.UserVendor:
		location, ok := vendorAccounts[username]
		if !ok {
			return nil, fmt.Errorf("invalid credentials")
		}
		return &models.User{Name: username, Type: models.UserVendor, Location: location}, nil
	default:
		return nil, fmt.Errorf("unknown user type %q", userType)
	}
}
