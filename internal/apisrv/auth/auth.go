package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/jekabolt/wholesale-portal/internal/apisrv"
	"github.com/jekabolt/wholesale-portal/internal/auth/jwt"
	"github.com/jekabolt/wholesale-portal/internal/auth/pwhash"
	"github.com/jekabolt/wholesale-portal/internal/dependency"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
	"github.com/jekabolt/wholesale-portal/internal/form"
)

// Server issues admin and retailer tokens.
type Server struct {
	repo       dependency.Repository
	mailer     dependency.Mailer
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	c          *Config
	masterHash string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

type TokenResponse struct {
	AuthToken string           `json:"auth_token"`
	Retailer  *entity.Retailer `json:"retailer,omitempty"`
}

// New creates a new auth server.
func New(c *Config, repo dependency.Repository, m dependency.Mailer) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if c.MasterPassword == "" {
		return nil, fmt.Errorf("master password is empty")
	}

	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("bad jwt ttl %q: %w", c.JWTTTL, err)
	}
	return &Server{
		repo:       repo,
		mailer:     m,
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:          c,
		jwtTTL:     ttl,
		masterHash: hash,
	}, nil
}

// Routes is mounted under /api/auth.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/admin/login", s.AdminLogin)
	r.Post("/admin", s.CreateAdmin)
	r.Delete("/admin", s.DeleteAdmin)
	r.Put("/admin/password", s.ChangePassword)
	r.Post("/retailer/signup", s.RetailerSignup)
	r.Post("/retailer/login", s.RetailerLogin)
	r.Put("/retailer/{id}/password", s.SetRetailerPassword)
	return r
}

func (s *Server) adminToken(username string) (string, error) {
	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username, jwt.RoleAdmin)
}

func (s *Server) retailerToken(id int) (string, error) {
	return jwt.NewToken(s.JwtAuth, s.jwtTTL, strconv.Itoa(id), jwt.RoleRetailer)
}

// AdminLogin returns a token for a valid username and password.
func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	req := &form.LoginRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	pwHash, err := s.repo.Admin().PasswordHashByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gerr.NotFound) {
			apisrv.Fail(w, r, "admin login", gerr.Unauthorized)
			return
		}
		apisrv.Fail(w, r, "can't get admin password hash", err)
		return
	}
	if err := s.pwhash.Validate(req.Password, pwHash); err != nil {
		apisrv.Fail(w, r, "admin login", gerr.Unauthorized)
		return
	}

	token, err := s.adminToken(req.Username)
	if err != nil {
		apisrv.Fail(w, r, "can't issue admin token", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, TokenResponse{AuthToken: token})
}

// CreateAdmin adds an admin. Requires the master password.
func (s *Server) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	req := &form.CreateAdminRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		apisrv.Fail(w, r, "create admin", gerr.Unauthorized)
		return
	}

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		apisrv.Fail(w, r, "can't hash password", err)
		return
	}
	if err := s.repo.Admin().AddAdmin(r.Context(), req.Username, pwHash); err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			err = fmt.Errorf("admin %s: %w", req.Username, gerr.AlreadyExists)
		}
		apisrv.Fail(w, r, "can't add admin", err)
		return
	}

	token, err := s.adminToken(req.Username)
	if err != nil {
		apisrv.Fail(w, r, "can't issue admin token", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, TokenResponse{AuthToken: token})
}

// DeleteAdmin removes an admin. Requires the master password.
func (s *Server) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	req := &form.DeleteAdminRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		apisrv.Fail(w, r, "delete admin", gerr.Unauthorized)
		return
	}
	if err := s.repo.Admin().DeleteAdmin(r.Context(), req.Username); err != nil {
		apisrv.Fail(w, r, "can't delete admin", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword accepts either the current password or the master password.
func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	req := &form.ChangePasswordRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	currentHash, err := s.repo.Admin().PasswordHashByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gerr.NotFound) {
			err = gerr.Unauthorized
		}
		apisrv.Fail(w, r, "can't get admin password hash", err)
		return
	}
	if err := s.pwhash.Validate(req.CurrentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(req.CurrentPassword, currentHash); err != nil {
			apisrv.Fail(w, r, "change password", gerr.Unauthorized)
			return
		}
	}

	newHash, err := s.pwhash.HashPassword(req.NewPassword)
	if err != nil {
		apisrv.Fail(w, r, "can't hash password", err)
		return
	}
	if err := s.repo.Admin().ChangePassword(r.Context(), req.Username, newHash); err != nil {
		apisrv.Fail(w, r, "can't change password", err)
		return
	}

	token, err := s.adminToken(req.Username)
	if err != nil {
		apisrv.Fail(w, r, "can't issue admin token", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, TokenResponse{AuthToken: token})
}

// RetailerSignup creates a retailer account and sends the welcome email.
func (s *Server) RetailerSignup(w http.ResponseWriter, r *http.Request) {
	req := &form.RetailerSignupRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	ctx := r.Context()

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		apisrv.Fail(w, r, "can't hash password", err)
		return
	}
	rt, err := s.repo.Retailers().AddRetailer(ctx, req.ToInsert(), pwHash)
	if err != nil {
		apisrv.Fail(w, r, "can't add retailer", err)
		return
	}

	if err := s.mailer.SendWelcome(ctx, s.repo, rt.Email, dto.RetailerToWelcome(rt)); err != nil {
		slog.Default().ErrorContext(ctx, "can't send welcome email",
			slog.Int("retailer_id", rt.ID),
			slog.String("err", err.Error()),
		)
	}

	token, err := s.retailerToken(rt.ID)
	if err != nil {
		apisrv.Fail(w, r, "can't issue retailer token", err)
		return
	}
	apisrv.JSON(w, r, http.StatusCreated, TokenResponse{AuthToken: token, Retailer: rt})
}

// SetRetailerPassword replaces a retailer's password. Requires the master
// password. Imported retailers have none until this is called.
func (s *Server) SetRetailerPassword(w http.ResponseWriter, r *http.Request) {
	id, err := apisrv.URLParamInt(r, "id")
	if err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	req := &form.RetailerPasswordRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}
	if err := s.pwhash.Validate(req.MasterPassword, s.masterHash); err != nil {
		apisrv.Fail(w, r, "set retailer password", gerr.Unauthorized)
		return
	}

	pwHash, err := s.pwhash.HashPassword(req.Password)
	if err != nil {
		apisrv.Fail(w, r, "can't hash password", err)
		return
	}
	if err := s.repo.Retailers().SetPasswordHash(r.Context(), id, pwHash); err != nil {
		apisrv.Fail(w, r, "can't set retailer password", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RetailerLogin returns a retailer token for a valid email and password.
func (s *Server) RetailerLogin(w http.ResponseWriter, r *http.Request) {
	req := &form.RetailerLoginRequest{}
	if err := apisrv.Bind(r, req); err != nil {
		render.Render(w, r, apisrv.ErrInvalidRequest(err))
		return
	}

	rt, err := s.repo.Retailers().GetRetailerByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gerr.NotFound) || errors.Is(err, gerr.RetailerNotFound) {
			apisrv.Fail(w, r, "retailer login", gerr.Unauthorized)
			return
		}
		apisrv.Fail(w, r, "can't get retailer", err)
		return
	}
	if err := s.pwhash.Validate(req.Password, rt.PasswordHash); err != nil {
		apisrv.Fail(w, r, "retailer login", gerr.Unauthorized)
		return
	}

	token, err := s.retailerToken(rt.ID)
	if err != nil {
		apisrv.Fail(w, r, "can't issue retailer token", err)
		return
	}
	apisrv.JSON(w, r, http.StatusOK, TokenResponse{AuthToken: token, Retailer: rt})
}

// RequireRole verifies the bearer token and rejects requests signed for
// another role. Verified claims are put on the request context.
func (s *Server) RequireRole(role jwt.Role) func(http.Handler) http.Handler {
	verify := jwtauth.Verifier(s.JwtAuth)
	return func(next http.Handler) http.Handler {
		return verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := jwt.FromContext(r.Context())
			if err != nil {
				render.Render(w, r, apisrv.ErrFrom(fmt.Errorf("%w: %s", gerr.Unauthorized, err.Error())))
				return
			}
			if c.Role != role {
				render.Render(w, r, apisrv.ErrFrom(gerr.Forbidden))
				return
			}
			if role == jwt.RoleRetailer {
				if _, err := c.RetailerID(); err != nil {
					render.Render(w, r, apisrv.ErrFrom(fmt.Errorf("%w: %s", gerr.Unauthorized, err.Error())))
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(r.Context(), c)))
		}))
	}
}
