package client

import (
	"context"
	"fmt"
	"sync"
	"unicode"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
)

// AuthState is the sign-in state of the flow.
type AuthState int

const (
	AuthStateSignedOut AuthState = iota
	AuthStateChecking
	AuthStateAuthenticated
	AuthStateFailed
)

func (s AuthState) String() string {
	switch s {
	case AuthStateSignedOut:
		return "signed_out"
	case AuthStateChecking:
		return "checking"
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// AuthFlow verifies access codes against the service and keeps the
// resulting session in a CredentialStore. State transitions are
// signed_out -> checking -> authenticated | failed, and a failed check
// never overwrites previously stored credentials.
type AuthFlow struct {
	client *Client
	store  CredentialStore

	mu    sync.Mutex
	state AuthState
}

// NewAuthFlow creates a flow, restoring the authenticated state when
// the store already holds a code.
func NewAuthFlow(client *Client, store CredentialStore) *AuthFlow {
	flow := &AuthFlow{client: client, store: store, state: AuthStateSignedOut}
	if creds, err := store.Load(); err == nil && creds != nil && creds.Code != "" {
		flow.state = AuthStateAuthenticated
	}
	return flow
}

// State returns the current sign-in state.
func (f *AuthFlow) State() AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AuthFlow) setState(state AuthState) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
}

// CheckAndSaveAuthCode validates the code format, verifies it against
// the service, fetches the profile and persists the session. Any step
// failing leaves the flow in the failed state with a typed error.
func (f *AuthFlow) CheckAndSaveAuthCode(ctx context.Context, code string) error {
	if !isValidCode(code) {
		f.setState(AuthStateFailed)
		return fmt.Errorf("%w: access code must be 4 alphanumeric characters", apperrors.ErrValidation)
	}

	f.setState(AuthStateChecking)

	if err := f.client.CheckAuth(ctx, code); err != nil {
		f.setState(AuthStateFailed)
		return err
	}

	info, err := f.client.UserInfo(ctx, code)
	if err != nil {
		f.setState(AuthStateFailed)
		return err
	}

	creds := Credentials{Code: code, Name: info.Name, PhotoURL: info.PhotoURL}
	if err := f.store.Save(creds); err != nil {
		f.setState(AuthStateFailed)
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	f.setState(AuthStateAuthenticated)
	return nil
}

// Credentials returns the stored session, or nil when signed out.
func (f *AuthFlow) Credentials() (*Credentials, error) {
	return f.store.Load()
}

// IsAuthenticated reports whether a session code is stored.
func (f *AuthFlow) IsAuthenticated() bool {
	creds, err := f.store.Load()
	return err == nil && creds != nil && creds.Code != ""
}

// Logout clears the stored session and resets the state.
func (f *AuthFlow) Logout() error {
	if err := f.store.Clear(); err != nil {
		return err
	}
	f.setState(AuthStateSignedOut)
	return nil
}

// isValidCode accepts exactly four letters or digits, matching the
// service-side rule.
func isValidCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
