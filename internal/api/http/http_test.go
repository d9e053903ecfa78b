package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/apisrv/admin"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/auth"
	"github.com/jekabolt/wholesale-portal/internal/apisrv/retailer"
	"github.com/jekabolt/wholesale-portal/internal/auth/jwt"
	"github.com/jekabolt/wholesale-portal/internal/dependency/mocks"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"github.com/jekabolt/wholesale-portal/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	h       http.Handler
	auth    *auth.Server
	repo    *mocks.Repository
	samples *mocks.Samples
	content *mocks.Content
}

func newFixture(t *testing.T, loginsPerMinute int) *fixture {
	t.Helper()
	f := &fixture{
		repo:    mocks.NewRepository(t),
		samples: mocks.NewSamples(t),
		content: mocks.NewContent(t),
	}
	f.repo.On("Samples").Return(f.samples).Maybe()
	f.repo.On("Content").Return(f.content).Maybe()

	mailer := mocks.NewMailer(t)
	catalog := mocks.NewCatalog(t)

	var err error
	f.auth, err = auth.New(&auth.Config{
		JWTSecret:                "test-secret",
		MasterPassword:           "master",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}, f.repo, mailer)
	require.NoError(t, err)

	l := ratelimit.NewMultiKeyLimiter(nil)
	t.Cleanup(l.Stop)

	s := New(&Config{AllowedOrigins: []string{"https://portal.example.com"}})
	f.h = s.Handler(
		f.auth,
		admin.New(f.repo, mocks.NewFileStore(t), mailer, nil, catalog),
		retailer.New(f.repo, mailer, catalog, l),
		loginsPerMinute,
	)
	return f
}

func (f *fixture) token(t *testing.T, sub string, role jwt.Role) string {
	t.Helper()
	tok, err := jwt.NewToken(f.auth.JwtAuth, time.Hour, sub, role)
	require.NoError(t, err)
	return tok
}

func (f *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t, 10)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = f.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	f := newFixture(t, 10)

	rec := f.do(http.MethodGet, "/api/admin/sample-requests", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/api/admin/sample-requests", f.token(t, "4", jwt.RoleRetailer))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/retailer/announcements", f.token(t, "ops", jwt.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.samples.On("ListSampleRequests", mock.Anything, false).Return([]entity.SampleRequest{}, nil).Once()
	rec = f.do(http.MethodGet, "/api/admin/sample-requests", f.token(t, "ops", jwt.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	f.content.On("ListAnnouncements", mock.Anything, true).Return([]entity.Announcement{}, nil).Once()
	rec = f.do(http.MethodGet, "/api/retailer/announcements", f.token(t, "4", jwt.RoleRetailer))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthThrottle(t *testing.T) {
	f := newFixture(t, 2)

	for i := 0; i < 2; i++ {
		rec := f.do(http.MethodPost, "/api/auth/admin/login", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	rec := f.do(http.MethodPost, "/api/auth/admin/login", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestCORS(t *testing.T) {
	f := newFixture(t, 10)

	req := httptest.NewRequest(http.MethodOptions, "/api/retailer/products", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/retailer/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	rec = httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-ratelimit-remaining")
	assert.Contains(t, exposed, "content-disposition")
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://portal.example.com"}
	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://portal.example.com", allowed))
	assert.False(t, isOriginAllowed("https://portal.example.com.evil.io", allowed))
}
