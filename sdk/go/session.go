package helpdesksdk

import (
	"context"
	"strings"
	"sync"
	"time"
)

type AuthState string

const (
	SignedOut AuthState = "signed_out"
	SignedIn  AuthState = "signed_in"
)

// Authenticator is the part of the API the session needs.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (SessionInfo, error)
	SetToken(token string)
}

var _ Authenticator = (*Client)(nil)

// SessionListener is called after every state change.
type SessionListener func(state AuthState, user User)

// Session is the observable authentication state of the app.
type Session struct {
	auth Authenticator

	mu        sync.RWMutex
	state     AuthState
	user      User
	token     string
	expiresAt time.Time
	listeners map[int]SessionListener
	nextID    int
}

func NewSession(auth Authenticator) *Session {
	return &Session{auth: auth, state: SignedOut, listeners: map[int]SessionListener{}}
}

func (s *Session) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Subscribe registers fn and returns a function that removes it.
func (s *Session) Subscribe(fn SessionListener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Restore resumes a saved token. The session is signed in only if the
// service still accepts it.
func (s *Session) Restore(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	s.auth.SetToken(token)
	info, err := s.auth.CurrentSession(ctx)
	if err != nil {
		s.auth.SetToken("")
		return err
	}
	s.transition(SignedIn, info.User, token, info.ExpiresAt)
	return nil
}

// SignOut ends the session on the service and locally. The local state is
// cleared even when the service call fails.
func (s *Session) SignOut(ctx context.Context) error {
	if s.State() == SignedOut {
		return nil
	}
	err := s.auth.SignOut(ctx)
	s.auth.SetToken("")
	s.transition(SignedOut, User{}, "", time.Time{})
	return err
}

func (s *Session) signIn(ctx context.Context, email, password string) error {
	res, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.auth.SetToken(res.Token)
	s.transition(SignedIn, res.User, res.Token, res.ExpiresAt)
	return nil
}

func (s *Session) transition(state AuthState, user User, token string, expiresAt time.Time) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.token = token
	s.expiresAt = expiresAt
	listeners := make([]SessionListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state, user)
	}
}

// SignInForm drives the sign-in screen.
type SignInForm struct {
	session *Session
	cfg     viewConfig

	mu      sync.Mutex
	busy    bool
	message string
}

func NewSignInForm(session *Session, opts ...ViewOption) *SignInForm {
	return &SignInForm{session: session, cfg: newViewConfig(opts)}
}

// Busy reports whether a submit is outstanding.
func (f *SignInForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Message is the last failure shown to the user.
func (f *SignInForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Submit validates the fields locally and signs in. Empty fields never reach
// the service. A second Submit while one is outstanding returns ErrBusy.
func (f *SignInForm) Submit(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return f.fail(&ValidationError{Message: f.cfg.msg(MsgMissingCredentials)})
	}

	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrBusy
	}
	f.busy = true
	f.message = ""
	f.mu.Unlock()

	err := f.session.signIn(ctx, email, password)

	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()

	if err != nil {
		return f.fail(&RemoteError{Message: f.cfg.msg(signInMessage(err)), Err: err})
	}
	return nil
}

func (f *SignInForm) fail(err error) error {
	f.mu.Lock()
	f.message = err.Error()
	f.mu.Unlock()
	f.cfg.notifier.Alert(f.cfg.msg(MsgSignInTitle), err.Error())
	return err
}

func signInMessage(err error) MessageKey {
	switch ErrorCode(err) {
	case "MISSING_CREDENTIALS":
		return MsgMissingCredentials
	case "INVALID_EMAIL":
		return MsgInvalidEmail
	case "INVALID_CREDENTIALS":
		return MsgInvalidCredentials
	default:
		return MsgSignInFailed
	}
}
