package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Client is an HTTP client for the learning platform backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new backend client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken updates the bearer token attached to authenticated requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges credentials for a bearer token via POST /auth/token.
// The endpoint takes a form-encoded body with OAuth2 password-flow field
// names: the email goes in "username".
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result TokenResponse
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account via POST /auth/register
func (c *Client) Register(ctx context.Context, reg RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/register", reg, nil)
}

// Me fetches the logged-in user's profile via GET /api/user/me
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SubmitAssessment uploads an assessment round result
func (c *Client) SubmitAssessment(ctx context.Context, result model.RoundResult) (*SubmitResponse, error) {
	return c.submit(ctx, "/api/assessment/submit", result)
}

// SubmitScreening uploads a screening round result
func (c *Client) SubmitScreening(ctx context.Context, result model.RoundResult) (*SubmitResponse, error) {
	return c.submit(ctx, "/api/screening/submit", result)
}

func (c *Client) submit(ctx context.Context, path string, result model.RoundResult) (*SubmitResponse, error) {
	var resp SubmitResponse
	if err := c.doJSON(ctx, http.MethodPost, path, result, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentIntervention fetches the learner's current module
func (c *Client) CurrentIntervention(ctx context.Context) (*InterventionModule, error) {
	var mod InterventionModule
	if err := c.doJSON(ctx, http.MethodGet, "/api/intervention/current", nil, &mod); err != nil {
		return nil, err
	}
	return &mod, nil
}

// History fetches past assessment scores, most recent first
func (c *Client) History(ctx context.Context) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	if err := c.doJSON(ctx, http.MethodGet, "/api/assessment/history", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// doJSON performs a JSON request against the backend
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, result)
}

// send executes the request, mapping transport failures to ErrConnection and
// non-2xx responses to APIError with the backend's detail message
func (c *Client) send(req *http.Request, result any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context cancellation is the caller discarding the call, not a
		// connectivity problem
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return &APIError{StatusCode: resp.StatusCode, Detail: eb.Detail}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
