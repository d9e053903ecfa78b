package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/auth/jwt"
	"github.com/jekabolt/wholesale-portal/internal/dependency/mocks"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret      = "hehe"
	masterPassword = "FJKqDyBvr9pAQMB3f8Uj4s"

	username    = "testusername"
	password    = "testPassword"
	newPassword = "newPassword"
)

type fixture struct {
	srv       *Server
	repo      *mocks.Repository
	admins    *mocks.Admin
	retailers *mocks.Retailers
	mailer    *mocks.Mailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:      mocks.NewRepository(t),
		admins:    mocks.NewAdmin(t),
		retailers: mocks.NewRetailers(t),
		mailer:    mocks.NewMailer(t),
	}
	f.repo.On("Admin").Return(f.admins).Maybe()
	f.repo.On("Retailers").Return(f.retailers).Maybe()

	srv, err := New(&Config{
		JWTSecret:                jwtSecret,
		MasterPassword:           masterPassword,
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "60m",
	}, f.repo, f.mailer)
	require.NoError(t, err)
	f.srv = srv
	return f
}

func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeToken(t *testing.T, rec *httptest.ResponseRecorder) TokenResponse {
	t.Helper()
	var tr TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	require.NotEmpty(t, tr.AuthToken)
	return tr
}

func TestNewConfig(t *testing.T) {
	_, err := New(&Config{MasterPassword: "x", PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "1h"}, nil, nil)
	assert.Error(t, err)

	_, err = New(&Config{JWTSecret: "s", MasterPassword: "x", PasswordHasherSaltSize: 16, PasswordHasherIterations: 1000, JWTTTL: "soon"}, nil, nil)
	assert.Error(t, err)
}

func TestAdminFlow(t *testing.T) {
	f := newFixture(t)
	h := f.srv.Routes()

	rec := do(t, h, http.MethodPost, "/admin", map[string]string{
		"master_password": "wrong",
		"username":        username,
		"password":        password,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.admins.On("AddAdmin", mock.Anything, username, mock.AnythingOfType("string")).Return(nil).Once()
	rec = do(t, h, http.MethodPost, "/admin", map[string]string{
		"master_password": masterPassword,
		"username":        "TestUsername",
		"password":        password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeToken(t, rec)

	pwHash, err := f.srv.pwhash.HashPassword(password)
	require.NoError(t, err)

	f.admins.On("PasswordHashByUsername", mock.Anything, username).Return(pwHash, nil).Once()
	f.admins.On("ChangePassword", mock.Anything, username, mock.AnythingOfType("string")).Return(nil).Once()
	rec = do(t, h, http.MethodPut, "/admin/password", map[string]string{
		"username":         username,
		"current_password": password,
		"new_password":     newPassword,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	newHash, err := f.srv.pwhash.HashPassword(newPassword)
	require.NoError(t, err)
	f.admins.On("PasswordHashByUsername", mock.Anything, username).Return(newHash, nil).Twice()

	rec = do(t, h, http.MethodPost, "/admin/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/admin/login", map[string]string{
		"username": username,
		"password": newPassword,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tr := decodeToken(t, rec)

	c, err := jwt.VerifyToken(f.srv.JwtAuth, tr.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, c.Role)
	assert.Equal(t, username, c.Subject)
}

func TestAdminLoginUnknownUser(t *testing.T) {
	f := newFixture(t)
	f.admins.On("PasswordHashByUsername", mock.Anything, "ghost").Return("", gerr.NotFound).Once()

	rec := do(t, f.srv.Routes(), http.MethodPost, "/admin/login", map[string]string{
		"username": "ghost",
		"password": "whatever1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordWithMaster(t *testing.T) {
	f := newFixture(t)
	f.admins.On("PasswordHashByUsername", mock.Anything, username).Return("pbkdf2-sha256$1000$x$y", nil).Once()
	f.admins.On("ChangePassword", mock.Anything, username, mock.AnythingOfType("string")).Return(nil).Once()

	rec := do(t, f.srv.Routes(), http.MethodPut, "/admin/password", map[string]string{
		"username":         username,
		"current_password": masterPassword,
		"new_password":     newPassword,
	}, "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDeleteAdmin(t *testing.T) {
	f := newFixture(t)
	f.admins.On("DeleteAdmin", mock.Anything, username).Return(nil).Once()

	rec := do(t, f.srv.Routes(), http.MethodDelete, "/admin", map[string]string{
		"master_password": masterPassword,
		"username":        username,
	}, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, f.srv.Routes(), http.MethodDelete, "/admin", map[string]string{
		"master_password": "nope",
		"username":        username,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetRetailerPassword(t *testing.T) {
	f := newFixture(t)
	h := f.srv.Routes()

	var storedHash string
	f.retailers.On("SetPasswordHash", mock.Anything, 4, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()

	rec := do(t, h, http.MethodPut, "/retailer/4/password", map[string]string{
		"master_password": masterPassword,
		"password":        "imported-pass",
	}, "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.NoError(t, f.srv.pwhash.Validate("imported-pass", storedHash))

	rec = do(t, h, http.MethodPut, "/retailer/4/password", map[string]string{
		"master_password": "nope",
		"password":        "imported-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, "/retailer/4/password", map[string]string{
		"master_password": masterPassword,
		"password":        "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.retailers.On("SetPasswordHash", mock.Anything, 99, mock.Anything).Return(gerr.RetailerNotFound).Once()
	rec = do(t, h, http.MethodPut, "/retailer/99/password", map[string]string{
		"master_password": masterPassword,
		"password":        "imported-pass",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func signupBody() map[string]string {
	return map[string]string{
		"company_name": "Barking Lot",
		"contact_name": "Dana Reyes",
		"email":        "Buyer@Example.com",
		"password":     "correct-horse",
		"phone":        "+15125550100",
		"street":       "12 Main St",
		"city":         "Austin",
		"state":        "tx",
		"zip":          "78701",
	}
}

func TestRetailerSignupAndLogin(t *testing.T) {
	f := newFixture(t)
	h := f.srv.Routes()

	var storedHash string
	f.retailers.On("AddRetailer", mock.Anything, mock.MatchedBy(func(ri *entity.RetailerInsert) bool {
		return ri.Email == "buyer@example.com" &&
			ri.BusinessAddress != nil && *ri.BusinessAddress == "12 Main St, Austin, TX 78701"
	}), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(&entity.Retailer{
			ID:             7,
			AccountNumber:  "WS-00AA11BB",
			RetailerInsert: entity.RetailerInsert{CompanyName: "Barking Lot", ContactName: "Dana Reyes", Email: "buyer@example.com"},
		}, nil).Once()
	f.mailer.On("SendWelcome", mock.Anything, f.repo, "buyer@example.com", mock.MatchedBy(func(d *dto.Welcome) bool {
		return d.AccountNumber == "WS-00AA11BB"
	})).Return(nil).Once()

	rec := do(t, h, http.MethodPost, "/retailer/signup", signupBody(), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tr := decodeToken(t, rec)
	require.NotNil(t, tr.Retailer)
	assert.Equal(t, 7, tr.Retailer.ID)

	c, err := jwt.VerifyToken(f.srv.JwtAuth, tr.AuthToken)
	require.NoError(t, err)
	id, err := c.RetailerID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	stored := &entity.Retailer{ID: 7, PasswordHash: storedHash}
	f.retailers.On("GetRetailerByEmail", mock.Anything, "buyer@example.com").Return(stored, nil).Twice()

	rec = do(t, h, http.MethodPost, "/retailer/login", map[string]string{
		"email":    "buyer@example.com",
		"password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeToken(t, rec)

	rec = do(t, h, http.MethodPost, "/retailer/login", map[string]string{
		"email":    "buyer@example.com",
		"password": "wrong-horse",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRetailerSignupRejected(t *testing.T) {
	f := newFixture(t)
	h := f.srv.Routes()

	body := signupBody()
	body["zip"] = "7870"
	rec := do(t, h, http.MethodPost, "/retailer/signup", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.retailers.On("AddRetailer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, gerr.AlreadyExists).Once()
	rec = do(t, h, http.MethodPost, "/retailer/signup", signupBody(), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRetailerLoginUnknownEmail(t *testing.T) {
	f := newFixture(t)
	f.retailers.On("GetRetailerByEmail", mock.Anything, "nobody@example.com").Return(nil, gerr.RetailerNotFound).Once()

	rec := do(t, f.srv.Routes(), http.MethodPost, "/retailer/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	f := newFixture(t)

	r := chi.NewRouter()
	r.With(f.srv.RequireRole(jwt.RoleRetailer)).Get("/retailer", func(w http.ResponseWriter, r *http.Request) {
		id, err := apisrv.RetailerID(r)
		require.NoError(t, err)
		assert.Equal(t, 9, id)
		w.WriteHeader(http.StatusOK)
	})
	r.With(f.srv.RequireRole(jwt.RoleAdmin)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "root", apisrv.Subject(r))
		w.WriteHeader(http.StatusOK)
	})

	retailerTok, err := f.srv.retailerToken(9)
	require.NoError(t, err)
	adminTok, err := f.srv.adminToken("root")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/retailer", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/retailer", nil, "garbage").Code)
	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/retailer", nil, adminTok).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/retailer", nil, retailerTok).Code)

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/admin", nil, retailerTok).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/admin", nil, adminTok).Code)

	expired, err := jwt.NewToken(f.srv.JwtAuth, -time.Minute, "9", jwt.RoleRetailer)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/retailer", nil, expired).Code)
}
