package handlers

import (
	"net/http"

	"github.com/peninsula-eng/peninsula-api/internal/store"
)

// PageHandler implements the screen-level routing contract: seven stable
// paths, a root redirect driven by the session, and protected screens
// bouncing to /login.
type PageHandler struct {
	store *store.Store
}

func NewPageHandler(st *store.Store) *PageHandler {
	return &PageHandler{store: st}
}

// Root sends the browser to /documents when a user is present, /login
// otherwise.
func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.store.CurrentUser(); ok {
		http.Redirect(w, r, "/documents", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Screen returns a handler identifying the named screen. The SPA shell
// consumes this to mount the right page.
func (h *PageHandler) Screen(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"screen": name})
	}
}
