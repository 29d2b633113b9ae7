package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/profile"
)

// HTTPClient is the Client implementation against the REST backend.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	onUnauthorized UnauthorizedHandler
}

// NewHTTPClient builds a client for the backend at baseURL. tokens feeds
// the bearer token into every request that has one available.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
		},
	}
}

// SetUnauthorizedHandler registers the hook fired when an authenticated
// request receives a 401. Must be wired before authenticated calls are
// issued.
func (c *HTTPClient) SetUnauthorizedHandler(fn UnauthorizedHandler) {
	c.onUnauthorized = fn
}

// Register creates an account at the role-specific collection endpoint and
// returns the server's confirmation message. Registration happens on the
// guest channel; rejections surface as plain errors.
func (c *HTTPClient) Register(ctx context.Context, accountType models.AccountType, reg models.Registration) (string, error) {
	path := "/recruiters"
	if accountType == models.AccountTalents {
		path = "/talents"
	}

	body, err := json.Marshal(reg)
	if err != nil {
		return "", err
	}

	var result struct {
		Message string `json:"message,omitempty"`
	}
	if err := c.send(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body), &result, false); err != nil {
		return "", err
	}

	if result.Message == "" {
		return "Registration successful", nil
	}
	return result.Message, nil
}

// Login exchanges credentials at the role-specific endpoint. A 4xx
// rejection maps to common.ErrInvalidCredentials; the login channel never
// triggers the global unauthorized hook.
func (c *HTTPClient) Login(ctx context.Context, email string, password string, accountType models.AccountType) (*models.LoginResult, error) {
	path := "/recruiters/login"
	if accountType == models.AccountTalents {
		path = "/talents/login"
	}

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var result models.LoginResult
	if err := c.send(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body), &result, false); err != nil {
		if isStatusError(err, http.StatusBadRequest) || isStatusError(err, http.StatusUnauthorized) || isStatusError(err, http.StatusForbidden) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, role string, id string) (profile.Record, error) {
	base, err := rolePath(role)
	if err != nil {
		return nil, err
	}
	var record profile.Record
	if err := c.send(ctx, http.MethodGet, base+"/"+id, "", nil, &record, true); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateProfile submits one partial update carrying the changed scalar
// fields, new attachments, and removal directives as a multipart payload,
// and returns the server's authoritative record.
func (c *HTTPClient) UpdateProfile(ctx context.Context, role string, id string, cs *profile.ChangeSet) (profile.Record, error) {
	base, err := rolePath(role)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeChangeSet(cs)
	if err != nil {
		return nil, err
	}

	var record profile.Record
	if err := c.send(ctx, http.MethodPatch, base+"/"+id, contentType, body, &record, true); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *HTTPClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.send(ctx, http.MethodGet, "/jobs", "", nil, &jobs, false); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := c.send(ctx, http.MethodGet, "/jobs/"+id, "", nil, &job, false); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return nil, err
	}
	var created models.Job
	if err := c.send(ctx, http.MethodPost, "/jobs", "application/json", bytes.NewReader(body), &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Apply(ctx context.Context, jobID string, app models.Application) error {
	body, err := json.Marshal(app)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, "/jobs/"+jobID+"/apply", "application/json", bytes.NewReader(body), nil, true)
}

func (c *HTTPClient) ListApplicants(ctx context.Context, jobID string) ([]models.Applicant, error) {
	var applicants []models.Applicant
	if err := c.send(ctx, http.MethodGet, "/applications/"+jobID, "", nil, &applicants, true); err != nil {
		return nil, err
	}
	return applicants, nil
}

// send issues one request and decodes a JSON response into out (when out is
// non-nil). authed selects whether a 401 tears the session down via the
// unauthorized hook; the guest channel reports its statuses to the caller
// instead.
func (c *HTTPClient) send(ctx context.Context, method string, path string, contentType string, body io.Reader, out any, authed bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if authed && resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return common.ErrUnauthorized
	}

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		// An empty 2xx body leaves out at its zero value.
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func rolePath(role string) (string, error) {
	switch role {
	case models.RoleTalent:
		return "/talents", nil
	case models.RoleRecruiter:
		return "/recruiters", nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}

// statusError preserves the HTTP status for callers that map specific
// statuses (e.g. login rejections).
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.status)
}

func isStatusError(err error, code int) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == code
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, resp.Status)
	default:
		return &statusError{code: resp.StatusCode, status: resp.Status}
	}
}
