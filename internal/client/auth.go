package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultAuthEndpoint is the Firebase Authentication REST host.
const DefaultAuthEndpoint = "https://identitytoolkit.googleapis.com"

var (
	// ErrSignedOut is returned when a token is requested without a session.
	ErrSignedOut = errors.New("not signed in")
	// ErrSessionExpired is returned when the ID token is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// Session is the signed-in Firebase user.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the ID token is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AuthError is an error answer from Firebase Authentication, e.g. EMAIL_EXISTS.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return "firebase auth: " + e.Message
}

// UserMessageKey maps a Firebase error to a translation key.
func (e *AuthError) UserMessageKey() string {
	switch {
	case strings.HasPrefix(e.Message, "EMAIL_EXISTS"):
		return "Email already in use"
	case strings.HasPrefix(e.Message, "INVALID_EMAIL"):
		return "Please enter a valid email address"
	case strings.HasPrefix(e.Message, "WEAK_PASSWORD"):
		return "Password must be at least 6 characters"
	case strings.HasPrefix(e.Message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(e.Message, "INVALID_PASSWORD"),
		strings.HasPrefix(e.Message, "INVALID_LOGIN_CREDENTIALS"):
		return "Invalid email or password"
	default:
		return "Error"
	}
}

// AuthConfig configures the Firebase Authentication REST client.
type AuthConfig struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
	Now        func() time.Time
}

// Auth talks to Firebase Authentication over REST.
type Auth struct {
	apiKey   string
	endpoint string
	http     *http.Client
	now      func() time.Time
}

// NewAuth creates the REST client. APIKey is required.
func NewAuth(cfg AuthConfig) (*Auth, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("auth: firebase api key is required")
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultAuthEndpoint
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Auth{apiKey: cfg.APIKey, endpoint: endpoint, http: hc, now: now}, nil
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// SignUp creates an email/password account and signs it in.
func (a *Auth) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return a.credentials(ctx, "accounts:signUp", email, password)
}

// SignIn signs in with email and password.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return a.credentials(ctx, "accounts:signInWithPassword", email, password)
}

// SendPasswordReset emails a password reset link.
func (a *Auth) SendPasswordReset(ctx context.Context, email string) error {
	in := map[string]string{"requestType": "PASSWORD_RESET", "email": email}
	return a.call(ctx, "accounts:sendOobCode", in, nil)
}

func (a *Auth) credentials(ctx context.Context, method, email, password string) (*Session, error) {
	var out tokenResponse
	in := credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}
	if err := a.call(ctx, method, in, &out); err != nil {
		return nil, err
	}

	s := &Session{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}
	if secs, err := strconv.Atoi(out.ExpiresIn); err == nil && secs > 0 {
		s.ExpiresAt = a.now().Add(time.Duration(secs) * time.Second)
	}
	if s.Email == "" {
		s.Email = email
	}
	return s, nil
}

func (a *Auth) call(ctx context.Context, method string, in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encode %s request", method)
	}

	u := a.endpoint + "/v1/" + method + "?key=" + url.QueryEscape(a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		return errors.Wrapf(err, "build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", method)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", method)
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(body, &e) == nil && e.Error.Message != "" {
			msg = e.Error.Message
		}
		return &AuthError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "decode %s response", method)
	}
	return nil
}

// Authenticator is the subset of Auth the gate needs.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SendPasswordReset(ctx context.Context, email string) error
}

var _ Authenticator = (*Auth)(nil)

// Route is the screen group the gate allows.
type Route string

const (
	RouteLogin Route = "login"
	RouteApp   Route = "app"
)

// Gate tracks the session and routes between the login screens and the app.
type Gate struct {
	auth Authenticator
	now  func() time.Time

	mu      sync.RWMutex
	session *Session
	nextID  int
	subs    map[int]func(Route, *Session)
}

// NewGate creates a signed-out gate.
func NewGate(auth Authenticator) *Gate {
	return &Gate{auth: auth, now: time.Now, subs: make(map[int]func(Route, *Session))}
}

// Route returns the app route when a session exists.
func (g *Gate) Route() Route {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.session == nil {
		return RouteLogin
	}
	return RouteApp
}

// Session returns the current session or nil.
func (g *Gate) Session() *Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// Subscribe is called on every sign-in and sign-out. The returned func unsubscribes.
func (g *Gate) Subscribe(fn func(Route, *Session)) func() {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.subs[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// SignIn signs in and moves the gate to the app.
func (g *Gate) SignIn(ctx context.Context, email, password string) (*Session, error) {
	s, err := g.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.set(s)
	return s, nil
}

// SignUp creates the account and moves the gate to the app.
func (g *Gate) SignUp(ctx context.Context, email, password string) (*Session, error) {
	s, err := g.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.set(s)
	return s, nil
}

// SendPasswordReset does not change the route.
func (g *Gate) SendPasswordReset(ctx context.Context, email string) error {
	return g.auth.SendPasswordReset(ctx, email)
}

// SignOut drops the session and moves the gate to login.
func (g *Gate) SignOut() {
	g.set(nil)
}

// Token is a TokenSource backed by the current session.
func (g *Gate) Token(_ context.Context) (string, error) {
	s := g.Session()
	if s == nil {
		return "", ErrSignedOut
	}
	if s.Expired(g.now()) {
		return "", ErrSessionExpired
	}
	return s.IDToken, nil
}

func (g *Gate) set(s *Session) {
	g.mu.Lock()
	g.session = s
	route := RouteLogin
	if s != nil {
		route = RouteApp
	}
	subs := make([]func(Route, *Session), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(route, s)
	}
}
