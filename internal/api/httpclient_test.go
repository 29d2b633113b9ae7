package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/profile"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, func() string { return token })
}

func TestSend_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(profile.Record{"firstName": "John"})
	})

	c := newTestClient(t, handler, "tok-123")
	_, err := c.GetProfile(context.Background(), models.RoleTalent, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestSend_NoTokenLeavesRequestUnmodified(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Job{})
	})

	c := newTestClient(t, handler, "")
	_, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestSend_UnauthorizedTriggersHook(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := newTestClient(t, handler, "stale")
	var hookCalls atomic.Int32
	c.SetUnauthorizedHandler(func(ctx context.Context) { hookCalls.Add(1) })

	_, err := c.GetProfile(context.Background(), models.RoleTalent, "u1")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestRegister_SelectsRoleEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Account created"})
	})

	c := newTestClient(t, handler, "")

	msg, err := c.Register(context.Background(), models.AccountTalents, models.Registration{
		FirstName: "John", LastName: "Doe",
		Email: "a@b.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "/talents", gotPath)
	assert.Equal(t, "Account created", msg)
	assert.Equal(t, map[string]string{
		"firstName": "John", "lastName": "Doe",
		"email": "a@b.com", "password": "secret",
	}, gotBody, "talent fields only, no empty companyName")

	msg, err = c.Register(context.Background(), models.AccountRecruiters, models.Registration{
		CompanyName: "Acme", Email: "hr@acme.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "/recruiters", gotPath)
	assert.Equal(t, "Account created", msg)
	assert.Equal(t, "Acme", gotBody["companyName"])
}

func TestRegister_EmptyBodyFallsBackToDefaultMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	c := newTestClient(t, handler, "")
	msg, err := c.Register(context.Background(), models.AccountTalents, models.Registration{
		FirstName: "John", LastName: "Doe", Email: "a@b.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful", msg)
}

func TestRegister_RejectionSurfacesError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	c := newTestClient(t, handler, "")
	fired := false
	c.SetUnauthorizedHandler(func(ctx context.Context) { fired = true })

	_, err := c.Register(context.Background(), models.AccountTalents, models.Registration{
		Email: "a@b.com", Password: "secret",
	})
	require.Error(t, err)
	assert.False(t, fired, "registration runs on the guest channel")
}

func TestLogin_SelectsRoleEndpoint(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(models.LoginResult{Token: "tok"})
	})

	c := newTestClient(t, handler, "")

	_, err := c.Login(context.Background(), "a@b.com", "secret", models.AccountTalents)
	require.NoError(t, err)
	assert.Equal(t, "/talents/login", gotPath)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret"}, gotBody)

	_, err = c.Login(context.Background(), "a@b.com", "secret", models.AccountRecruiters)
	require.NoError(t, err)
	assert.Equal(t, "/recruiters/login", gotPath)
}

func TestLogin_RejectionDoesNotFireUnauthorizedHook(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := newTestClient(t, handler, "")
	fired := false
	c.SetUnauthorizedHandler(func(ctx context.Context) { fired = true })

	_, err := c.Login(context.Background(), "a@b.com", "wrong", models.AccountTalents)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, fired, "login rejections are credential errors, not session expiry")
}

func TestUpdateProfile_SubmitsOnlyChangedFields(t *testing.T) {
	var gotMethod, gotPath string
	var gotForm map[string][]string
	var gotFiles []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotForm = r.MultipartForm.Value
		for name := range r.MultipartForm.File {
			gotFiles = append(gotFiles, name)
		}
		_ = json.NewEncoder(w).Encode(profile.Record{"phoneNumber": "222"})
	})

	c := newTestClient(t, handler, "tok")
	cs := &profile.ChangeSet{Fields: map[string]any{"phoneNumber": "222"}}

	record, err := c.UpdateProfile(context.Background(), models.RoleTalent, "u1", cs)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/talents/u1", gotPath)
	assert.Equal(t, map[string][]string{"phoneNumber": {"222"}}, gotForm,
		"body must contain only the changed field")
	assert.Empty(t, gotFiles)
	assert.Equal(t, profile.Record{"phoneNumber": "222"}, record)
}

func TestUpdateProfile_EncodesUploadsAndRemovals(t *testing.T) {
	var gotForm map[string][]string
	var gotFile []byte
	var gotFileName string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotForm = r.MultipartForm.Value

		f, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer f.Close()
		gotFileName = header.Filename
		buf := make([]byte, header.Size)
		_, _ = f.Read(buf)
		gotFile = buf

		_ = json.NewEncoder(w).Encode(profile.Record{})
	})

	c := newTestClient(t, handler, "tok")
	cs := &profile.ChangeSet{
		Fields:   map[string]any{"companySize": "51-100"},
		Uploads:  map[string]*profile.PendingAttachment{"logo": {Name: "logo.png", Size: 3, Data: []byte("png")}},
		Removals: []string{"banner"},
	}

	_, err := c.UpdateProfile(context.Background(), models.RoleRecruiter, "r1", cs)
	require.NoError(t, err)

	assert.Equal(t, []string{"51-100"}, gotForm["companySize"])
	assert.Equal(t, []string{"true"}, gotForm["removeBanner"])
	assert.Equal(t, "logo.png", gotFileName)
	assert.Equal(t, []byte("png"), gotFile)
}

func TestUpdateProfile_EncodesTypedFields(t *testing.T) {
	var gotForm map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotForm = r.MultipartForm.Value
		_ = json.NewEncoder(w).Encode(profile.Record{})
	})

	c := newTestClient(t, handler, "tok")
	cs := &profile.ChangeSet{Fields: map[string]any{
		"salary":       60000,
		"requirements": profile.Lines{"a", "b"},
		"tags":         profile.Tags{"go", "sql"},
	}}

	_, err := c.UpdateProfile(context.Background(), models.RoleRecruiter, "r1", cs)
	require.NoError(t, err)

	assert.Equal(t, []string{"60000"}, gotForm["salary"])
	assert.Equal(t, []string{"a\nb"}, gotForm["requirements"])
	assert.Equal(t, []string{"go", "sql"}, gotForm["tags"])
}

func TestSend_MutatingRequestsCarryRequestID(t *testing.T) {
	var gotID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(models.Job{})
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.CreateJob(context.Background(), models.NewJob{Title: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestSend_ServerErrorsMapToUnavailable(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := newTestClient(t, handler, "")
	_, err := c.ListJobs(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestSend_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c := newTestClient(t, handler, "")
	_, err := c.GetJob(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSend_ConnectionRefusedMapsToUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", time.Second, func() string { return "" })
	_, err := c.ListJobs(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestGetProfile_UnknownRoleRejected(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", time.Second, func() string { return "" })
	_, err := c.GetProfile(context.Background(), "admin", "u1")
	require.Error(t, err)
}
