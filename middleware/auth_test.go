package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	identity   *identity.Identity
	err        error
	token      string
	permission string
}

func (s *stubProvider) Check(_ context.Context, token, permission string) (*identity.Identity, error) {
	s.token, s.permission = token, permission
	if token == "" {
		return nil, identity.ErrMissingToken
	}
	return s.identity, s.err
}

func authRouter(p identity.Provider, seen *service.Scope) *gin.Engine {
	r := newTestRouter()
	r.GET("/beds", Authorize(p, "view department beds"), func(c *gin.Context) {
		*seen = GetScope(c)
		c.Status(http.StatusOK)
	})
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) util.APIResponse {
	t.Helper()
	var body util.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthorize_Permitted(t *testing.T) {
	defer util.SetLoggerOutputForTest(&bytes.Buffer{})()
	p := &stubProvider{identity: &identity.Identity{Permitted: true, UserID: 4, HospitalID: 2, Roles: []string{"hospital admin"}}}
	var scope service.Scope

	req := httptest.NewRequest(http.MethodGet, "/beds", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	authRouter(p, &scope).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer abc", p.token)
	assert.Equal(t, "view department beds", p.permission)
	assert.Equal(t, service.Scope{UserID: 4, HospitalID: 2, Roles: []string{"hospital admin"}}, scope)
}

func TestAuthorize_TokenFromQuery(t *testing.T) {
	defer util.SetLoggerOutputForTest(&bytes.Buffer{})()
	p := &stubProvider{identity: &identity.Identity{Permitted: true}}
	var scope service.Scope

	w := httptest.NewRecorder()
	authRouter(p, &scope).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/beds?bearer_token=xyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "xyz", p.token)
}

func TestAuthorize_Rejections(t *testing.T) {
	defer util.SetLoggerOutputForTest(&bytes.Buffer{})()

	tests := []struct {
		name   string
		p      *stubProvider
		token  string
		status int
	}{
		{name: "missing token", p: &stubProvider{}, status: http.StatusUnauthorized},
		{name: "not permitted", p: &stubProvider{identity: &identity.Identity{Permitted: false}}, token: "t", status: http.StatusForbidden},
		{name: "auth service status", p: &stubProvider{err: &identity.StatusError{StatusCode: http.StatusUnauthorized, Message: "Unauthenticated"}}, token: "t", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scope service.Scope
			req := httptest.NewRequest(http.MethodGet, "/beds", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			w := httptest.NewRecorder()
			authRouter(tt.p, &scope).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			body := decodeEnvelope(t, w)
			assert.Equal(t, tt.status, body.StatusCode)
			assert.False(t, body.Success)
			assert.Zero(t, scope.UserID)
		})
	}
}

func TestGetScope_Unauthenticated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, service.Scope{}, GetScope(c))
}
