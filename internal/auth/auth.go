// Package auth implements the demo authentication contract: a single
// hard-coded credential pair, no hashing and no tokens. The session is the
// user held by the store; middleware only checks its presence.
package auth

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/peninsula-eng/peninsula-api/internal/models"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

const (
	demoUsername = "admin"
	demoPassword = "123456"
)

// ErrInvalidCredentials is returned for every pair other than the demo one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate checks the demo credential pair and returns the built-in
// admin identity.
func Authenticate(username, password string) (models.User, error) {
	if username != demoUsername || password != demoPassword {
		return models.User{}, ErrInvalidCredentials
	}
	return models.User{
		ID:    "1",
		Name:  "أدمن",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}, nil
}

// RequireUser guards API routes: without a session user the request is
// rejected with 401.
func RequireUser(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := st.CurrentUser(); !ok {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePage guards screen routes: without a session user the browser is
// sent to the login screen instead of receiving an error.
func RequirePage(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := st.CurrentUser(); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
