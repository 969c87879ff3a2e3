package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/rs/zerolog/log"
)

// Service is the single source of truth for the admin session. It bridges the
// in-memory session and durable storage, so a process restart restores the
// session without a network call.
type Service struct {
	storer  CredentialStorer
	revoker TokenRevoker

	mu      sync.Mutex
	current *Session
}

// NewService is the constructor for the credential store service. The revoker
// is optional and can be attached later with SetRevoker, since the API client
// that implements it needs the service first.
func NewService(storer CredentialStorer) *Service {
	return &Service{storer: storer}
}

// SetRevoker attaches the component used for best-effort token revocation on
// logout.
func (s *Service) SetRevoker(revoker TokenRevoker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoker = revoker
}

// Restore reads the persisted session on process start. No network call is
// made; token validity is established lazily on the first API failure.
// Corrupted or partial persisted data is treated as "no session", never as an
// error.
func (s *Service) Restore(ctx context.Context) (*Session, error) {
	access, err := s.storer.Get(ctx, db.KeyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted access token: %w", err)
	}
	refresh, err := s.storer.Get(ctx, db.KeyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted refresh token: %w", err)
	}
	userJSON, err := s.storer.Get(ctx, db.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted user record: %w", err)
	}

	session := &Session{AccessToken: access, RefreshToken: refresh}
	if userJSON != "" {
		if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
			log.Warn().Err(err).Msg("Persisted user record is unparseable, treating as no session")
			session = &Session{}
		}
	}

	// A refresh token can never legitimately outlive its access token; a
	// lone refresh token means the stored state is damaged.
	if access == "" && refresh != "" {
		log.Warn().Msg("Persisted refresh token has no access token, treating as no session")
		session = &Session{}
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	log.Info().Bool("authenticated", session.Authenticated()).Msg("Session restored from storage")
	return session, nil
}

// Login stores the user record and token pair durably and in memory, marking
// the session authenticated.
func (s *Service) Login(ctx context.Context, user UserRecord, accessToken, refreshToken string) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	if err := s.storer.SetMany(ctx, map[string]string{
		db.KeyAccessToken:  accessToken,
		db.KeyRefreshToken: refreshToken,
		db.KeyUser:         string(userJSON),
	}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}
	s.mu.Unlock()

	log.Info().Str("user", user.Email).Msg("Session stored after login")
	return nil
}

// SetTokens atomically replaces both tokens without touching the user record.
// The pair is persisted durably before this returns, so a crash immediately
// after a refresh does not lose the new tokens.
func (s *Service) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.storer.SetMany(ctx, map[string]string{
		db.KeyAccessToken:  accessToken,
		db.KeyRefreshToken: refreshToken,
	}); err != nil {
		return fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	s.mu.Lock()
	if s.current == nil {
		s.current = &Session{}
	}
	s.current.AccessToken = accessToken
	s.current.RefreshToken = refreshToken
	s.mu.Unlock()

	log.Info().Msg("Token pair replaced and saved successfully")
	return nil
}

// Logout tells the backend to revoke the current refresh token, then clears
// the session locally. The revoke call is best effort: its error is logged
// and deliberately discarded, because logout must always succeed locally even
// when the network does not cooperate.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	revoker := s.revoker
	var refreshToken string
	if s.current != nil {
		refreshToken = s.current.RefreshToken
	}
	s.mu.Unlock()

	if revoker != nil && refreshToken != "" {
		if err := revoker.RevokeRefreshToken(ctx, refreshToken); err != nil {
			log.Debug().Err(err).Msg("Refresh token revoke failed, clearing local session anyway")
		}
	}

	return s.Clear(ctx)
}

// Clear wipes the session from memory and durable storage without contacting
// the backend. The API client uses this when terminating an unrecoverable
// session.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.storer.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	s.mu.Lock()
	s.current = &Session{}
	s.mu.Unlock()

	log.Info().Msg("Session cleared")
	return nil
}

// Current returns a copy of the in-memory session. The copy is valid only for
// the lifetime of one request; callers must not cache it.
func (s *Service) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return &Session{}
	}
	copied := *s.current
	return &copied
}
