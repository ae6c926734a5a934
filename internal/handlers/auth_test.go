package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/store"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestLoginWithDemoCredentials(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())

	rec := postJSON(t, h.Login, `{"username":"admin","password":"123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "admin", user["role"])

	_, ok := st.CurrentUser()
	assert.True(t, ok)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"someone","password":"123456"}`,
	} {
		rec := postJSON(t, h.Login, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), i18n.ErrInvalidCredentials)
	}
	_, ok := st.CurrentUser()
	assert.False(t, ok)
}

func TestLoginValidatesPayload(t *testing.T) {
	h := NewAuthHandler(store.New(zerolog.Nop()), zerolog.Nop())

	rec := postJSON(t, h.Login, `{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Login, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecondLoginConflicts(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())

	require.Equal(t, http.StatusOK, postJSON(t, h.Login, `{"username":"admin","password":"123456"}`).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, h.Login, `{"username":"admin","password":"123456"}`).Code)
}

func TestLogout(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())
	require.Equal(t, http.StatusOK, postJSON(t, h.Login, `{"username":"admin","password":"123456"}`).Code)

	rec := postJSON(t, h.Logout, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := st.CurrentUser()
	assert.False(t, ok)
}

func TestRegisterEnqueuesPendingRegistration(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())

	rec := postJSON(t, h.Register, `{"name":"خالد","email":"khaled@example.com","department":"الهندسة"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	regs := st.Registrations()
	require.Len(t, regs, 1)
	assert.Equal(t, "خالد", regs[0].Name)
	// Submission notifies the admins.
	assert.Equal(t, 1, st.UnreadCount())
}

func TestRegisterValidatesEmail(t *testing.T) {
	h := NewAuthHandler(store.New(zerolog.Nop()), zerolog.Nop())
	rec := postJSON(t, h.Register, `{"name":"خالد","email":"not-an-email","department":"الهندسة"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionReflectsStore(t *testing.T) {
	st := store.New(zerolog.Nop())
	h := NewAuthHandler(st, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Session(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp["user"])

	require.Equal(t, http.StatusOK, postJSON(t, h.Login, `{"username":"admin","password":"123456"}`).Code)
	rec = httptest.NewRecorder()
	h.Session(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp["user"])
}
