package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/lizardui"
	"github.com/dmitrymomot/lizardui/pkg/auth"
)

// LoginTemplate is rendered when the login form is requested.
const LoginTemplate = "lizard_ui/login.html"

// LoginResponse is the JSON reply to a login attempt.
type LoginResponse struct {
	Success bool    `json:"success"`
	Next    *string `json:"next"`
}

// Accounts serves the login and logout endpoints.
type Accounts struct {
	auth auth.Authenticator
	next lizardui.Extractor
}

// NewAccounts creates the account handlers over an authenticator.
// The redirect target "next" is read from the POST body first, then from
// the query string.
func NewAccounts(a auth.Authenticator) *Accounts {
	return &Accounts{
		auth: a,
		next: lizardui.NewExtractor(lizardui.FromPostForm("next"), lizardui.FromQuery("next")),
	}
}

// Routes registers login and logout under /accounts.
func (h *Accounts) Routes(r lizardui.Router) {
	r.Route("/accounts", func(r lizardui.Router) {
		r.GET("/login/", h.login)
		r.POST("/login/", h.login)
		r.Name("lizard_ui.login", "/login/")

		r.GET("/logout/", h.logout)
		r.POST("/logout/", h.logout)
		r.Name("lizard_ui.logout", "/logout/")
	})
}

func (h *Accounts) login(c lizardui.Context) error {
	var next *string
	if v, ok := h.next.Extract(c); ok {
		next = &v
	}

	username, hasUser := c.PostForm("username")
	password, hasPass := c.PostForm("password")
	if !hasUser || !hasPass {
		form := ""
		if next != nil {
			form = *next
		}
		return c.RenderTemplate(http.StatusOK, LoginTemplate, map[string]any{"next": form})
	}

	resp := LoginResponse{Next: next}
	user, err := h.auth.Authenticate(c.Context(), username, password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.LogInfo("login failed", "username", username)
	case err != nil:
		return err
	case !user.Active:
		c.LogInfo("login refused for inactive user", "username", username)
	default:
		if err := c.AuthenticateSession(user.ID); err != nil {
			return err
		}
		resp.Success = true
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Accounts) logout(c lizardui.Context) error {
	if err := c.DestroySession(); err != nil {
		return err
	}
	return c.String(http.StatusOK, "")
}
