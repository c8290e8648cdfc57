// Package client is the data layer of the Blue Switch app: typed calls to the
// backend, screen loaders, optimistic device switches and the auth gate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/i18n"
)

// headerUserEmail must match the header the API trusts when token verification is off.
const headerUserEmail = "X-User-Email"

// TokenSource returns the bearer token for the signed-in user.
type TokenSource func(ctx context.Context) (string, error)

// Config is the single configuration shared by every backend call.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger

	// Language is the preferred UI language tag, e.g. "es-MX".
	Language string

	// Token, when set, authenticates requests with a Firebase ID token.
	Token TokenSource

	// DevEmail is sent as X-User-Email when Token is nil.
	DevEmail string
}

// Client calls the Blue Switch REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	tr      *i18n.Translator
	token   TokenSource
	email   string
}

// New creates a client. BaseURL is required.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("client: base URL is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	lg := cfg.Logger
	if lg == nil {
		lg = slog.Default()
	}

	return &Client{
		baseURL: base,
		http:    hc,
		logger:  lg,
		tr:      i18n.New(cfg.Language),
		token:   cfg.Token,
		email:   cfg.DevEmail,
	}, nil
}

// Translator returns the translator for the configured language.
func (c *Client) Translator() *i18n.Translator {
	return c.tr
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsCode reports whether err is an APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// decodeAPIError reads {"error":{"code","message"}}, {"error":"text"} or {"mensaje":"text"}.
func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Mensaje string          `json:"mensaje"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	var structured struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	var text string
	switch {
	case len(envelope.Error) > 0 && json.Unmarshal(envelope.Error, &structured) == nil:
		apiErr.Code = structured.Code
		apiErr.Message = structured.Message
	case len(envelope.Error) > 0 && json.Unmarshal(envelope.Error, &text) == nil:
		apiErr.Message = text
	case envelope.Mensaje != "":
		apiErr.Message = envelope.Mensaje
	default:
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// do sends a JSON request and decodes a JSON response into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encode %s request", path)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "build %s request", path)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return errors.Wrap(err, "get id token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else if c.email != "" {
		req.Header.Set(headerUserEmail, c.email)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, raw)
		c.logger.DebugContext(ctx, "backend call failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Owner selects devices by user email or by team code. Exactly one is set.
type Owner struct {
	Email    string `json:"email,omitempty"`
	TeamCode string `json:"team_code,omitempty"`
}

// ByEmail selects the devices of a user.
func ByEmail(email string) Owner { return Owner{Email: email} }

// ByTeam selects the devices of a team.
func ByTeam(code string) Owner { return Owner{TeamCode: code} }

// Ping checks that the backend answers.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/connection", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return errors.Errorf("unexpected connection status %q", out.Status)
	}
	return nil
}

// GetDevices lists the devices of a user or a team.
func (c *Client) GetDevices(ctx context.Context, owner Owner) ([]domain.Device, error) {
	var devices []domain.Device
	if err := c.post(ctx, "/get_devices", owner, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// ReadCO2 returns the CO2 report of a user or a team.
func (c *Client) ReadCO2(ctx context.Context, owner Owner) (*domain.CO2Report, error) {
	var report domain.CO2Report
	if err := c.post(ctx, "/read-CO2", owner, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// NewDevice is the body of a create-device call.
type NewDevice struct {
	Name     string  `json:"nombre"`
	Category string  `json:"categoria"`
	Watts    float64 `json:"watts"`
	Color    string  `json:"color,omitempty"`
	Image    string  `json:"imagen,omitempty"`
	Email    string  `json:"email"`
	TeamCode string  `json:"team_code,omitempty"`
}

// CreateDevice registers a device and returns the stored copy.
func (c *Client) CreateDevice(ctx context.Context, in NewDevice) (*domain.Device, error) {
	var out struct {
		Device *domain.Device `json:"device"`
	}
	if err := c.post(ctx, "/crear-device", in, &out); err != nil {
		return nil, err
	}
	if out.Device == nil {
		return nil, errors.New("create device: response has no device")
	}
	return out.Device, nil
}

// UpdateStatus switches, favorites or deletes a device.
// The returned device is nil after a delete.
func (c *Client) UpdateStatus(ctx context.Context, id string, status bool, arg domain.StatusArgument) (*domain.Device, error) {
	in := struct {
		ID       string                `json:"id"`
		Status   bool                  `json:"status"`
		Argument domain.StatusArgument `json:"argument"`
	}{ID: id, Status: status, Argument: arg}

	var out struct {
		Device *domain.Device `json:"device"`
	}
	if err := c.post(ctx, "/update-status", in, &out); err != nil {
		return nil, err
	}
	return out.Device, nil
}

// GetMembers lists the members of a team.
func (c *Client) GetMembers(ctx context.Context, teamCode string) ([]domain.TeamMember, error) {
	var out struct {
		Members []domain.TeamMember `json:"members"`
	}
	if err := c.post(ctx, "/get_members", map[string]string{"team_code": teamCode}, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

type teamEnvelope struct {
	Team *domain.Team `json:"team"`
}

// CreateTeam creates a team owned by email.
func (c *Client) CreateTeam(ctx context.Context, name, email string) (*domain.Team, error) {
	var out teamEnvelope
	if err := c.post(ctx, "/api/Teams/create_team", map[string]string{"team_name": name, "email": email}, &out); err != nil {
		return nil, err
	}
	return out.Team, nil
}

// JoinTeam adds email to the team identified by name and code.
func (c *Client) JoinTeam(ctx context.Context, email, name, code string) (*domain.Team, error) {
	var out teamEnvelope
	in := map[string]string{"email": email, "team_name": name, "team_code": code}
	if err := c.post(ctx, "/api/Teams/join_team", in, &out); err != nil {
		return nil, err
	}
	return out.Team, nil
}

// ReadTeams lists the teams of email.
func (c *Client) ReadTeams(ctx context.Context, email string) ([]domain.Team, error) {
	var out struct {
		Teams []domain.Team `json:"teams"`
	}
	if err := c.post(ctx, "/api/Teams/read_teams", map[string]string{"email": email}, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

// UpdateMember promotes, demotes or removes a member as the signed-in user.
func (c *Client) UpdateMember(ctx context.Context, teamCode, email string, action domain.MemberAction) (*domain.TeamMember, error) {
	var out struct {
		Member *domain.TeamMember `json:"member"`
	}
	in := map[string]string{"team_code": teamCode, "email": email, "action": string(action)}
	if err := c.post(ctx, "/api/Teams/update_members", in, &out); err != nil {
		return nil, err
	}
	return out.Member, nil
}

// DeleteTeam deletes a team administered by the signed-in user.
func (c *Client) DeleteTeam(ctx context.Context, teamCode string) error {
	return c.post(ctx, "/api/Teams/delete_team", map[string]string{"team_code": teamCode}, nil)
}

// GetUser returns the profile of email.
func (c *Client) GetUser(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := c.post(ctx, "/get_user", map[string]string{"email": email}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type userEnvelope struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// UpdateUser stores the non-empty fields of u.
func (c *Client) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var out userEnvelope
	if err := c.post(ctx, "/update_user", u, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, errors.New("update user: backend reported failure")
	}
	return out.User, nil
}

// UploadAvatar stores the avatar URI of email.
func (c *Client) UploadAvatar(ctx context.Context, email, imageURI string) (*domain.User, error) {
	var out userEnvelope
	if err := c.post(ctx, "/upload_avatar", map[string]string{"email": email, "imageUri": imageURI}, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, errors.New("upload avatar: backend reported failure")
	}
	return out.User, nil
}

// ReadPerDevice returns one footprint per device, index-aligned with devices.
func (c *Client) ReadPerDevice(ctx context.Context, devices []domain.Device) ([]domain.Footprint, error) {
	if devices == nil {
		devices = []domain.Device{}
	}
	var out []domain.Footprint
	if err := c.post(ctx, "/read_perDev", map[string]any{"data": devices}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MemberStats returns the contribution of email to a team.
func (c *Client) MemberStats(ctx context.Context, email, teamCode string) (*domain.MemberStats, error) {
	var out struct {
		Success bool                `json:"success"`
		Data    *domain.MemberStats `json:"data"`
	}
	if err := c.post(ctx, "/readstatisdics_peruser", map[string]string{"email": email, "team_code": teamCode}, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, errors.New("member stats: response has no data")
	}
	return out.Data, nil
}
