package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
	"github.com/dmitrijs2005/gatormarket/internal/server/validation"
)

type AuthHandler struct {
	users  *users.Service
	logger logging.Logger
}

func NewAuthHandler(us *users.Service, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: us, logger: logger}
}

type signupResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type profileResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type tokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        profileResponse `json:"user"`
}

func profileOf(u *users.User) profileResponse {
	return profileResponse{Email: u.Email, Username: u.Username, IsAdmin: u.IsAdmin}
}

// Routes mounts the public endpoints and the token-protected /secure-data.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.With(RequireUser(h.users)).Get("/secure-data", h.SecureData)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in users.SignupInput
	if verr := decodeJSON(r, &in); verr != nil {
		writeValidation(w, "body", verr)
		return
	}

	u, err := h.users.Signup(r.Context(), in)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			writeValidation(w, "body", verr)
		case errors.Is(err, users.ErrDuplicate):
			writeDetail(w, http.StatusBadRequest, "Username or email already registered")
		default:
			h.internal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, signupResponse{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin})
}

// Login takes an urlencoded form; username may hold the email instead.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeValidation(w, "body", validation.Single("", "Invalid form body", "value_error"))
		return
	}

	var missing []validation.FieldError
	for _, name := range []string{"username", "password"} {
		if r.PostForm.Get(name) == "" {
			missing = append(missing, validation.FieldError{Field: name, Message: "Field required", Type: "missing"})
		}
	}
	if len(missing) > 0 {
		writeValidation(w, "body", &validation.Error{Fields: missing})
		return
	}

	token, u, err := h.users.Login(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			unauthorized(w, "Incorrect username or password")
			return
		}
		h.internal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer", User: profileOf(u)})
}

func (h *AuthHandler) SecureData(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, profileOf(u))
}

func (h *AuthHandler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}
