package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SettingsID identity the settings gate verifies against
const SettingsID = "settings"

var (
	ErrInvalidCredentials = errors.New("Usuário ou senha inválidos.")
	ErrInvalidSecret      = errors.New("Senha incorreta.")
	ErrSessionNotFound    = errors.New("sessão inválida ou expirada")
)

// Session one logged-in browser
type Session struct {
	Token            string    `json:"token"`
	User             string    `json:"user"`
	SettingsUnlocked bool      `json:"settingsUnlocked"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Gate holds the two independent checks: dashboard login and settings unlock.
// Sessions live only in memory and die with the process.
type Gate struct {
	login    Verifier
	settings Verifier
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewGate(login, settings Verifier) *Gate {
	return &Gate{
		login:    login,
		settings: settings,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

// Login opens a session when the credentials verify.
func (g *Gate) Login(user, password string) (Session, error) {
	if !g.login.Verify(user, password) {
		log.Warn().Str("user", user).Msg("login rejected")
		return Session{}, ErrInvalidCredentials
	}

	s := Session{
		Token:     uuid.New().String(),
		User:      user,
		CreatedAt: g.now(),
	}

	g.mu.Lock()
	g.sessions[s.Token] = s
	g.mu.Unlock()

	log.Info().Str("user", user).Msg("login accepted")
	return s, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (g *Gate) Logout(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// Session looks up a live session by token.
func (g *Gate) Session(token string) (Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.sessions[token]
	return s, ok
}

// UnlockSettings marks the session as allowed into the settings area.
func (g *Gate) UnlockSettings(token, password string) (Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if !g.settings.Verify(SettingsID, password) {
		log.Warn().Str("user", s.User).Msg("settings unlock rejected")
		return Session{}, ErrInvalidSecret
	}

	s.SettingsUnlocked = true
	g.sessions[token] = s
	return s, nil
}
