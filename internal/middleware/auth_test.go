package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonboard-dev/anonboard/internal/domain"
	internal_errors "github.com/anonboard-dev/anonboard/internal/errors"
)

type MockJwtService struct {
	decodeTokenFunc func(token string) (domain.User, error)
}

func (m *MockJwtService) NewToken(user domain.User) (string, error) {
	return "mock-token", nil
}

func (m *MockJwtService) DecodeToken(token string) (domain.User, error) {
	if m.decodeTokenFunc != nil {
		return m.decodeTokenFunc(token)
	}
	return domain.User{}, internal_errors.Unauthorized("Invalid or expired token")
}

// echoUser records the context user seen by the wrapped handler.
func echoUser(captured **domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid bearer token populates the context", func(t *testing.T) {
		jwtService := &MockJwtService{decodeTokenFunc: func(token string) (domain.User, error) {
			assert.Equal(t, "valid-token", token)
			return domain.User{Id: 7, Username: "alice"}, nil
		}}
		var captured *domain.User
		handler := RequireAuth(jwtService)(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, captured)
		assert.Equal(t, domain.UserId(7), captured.Id)
		assert.Equal(t, "alice", captured.Username)
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		var captured *domain.User
		handler := RequireAuth(&MockJwtService{})(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
	})

	t.Run("malformed header is a 401", func(t *testing.T) {
		var captured *domain.User
		handler := RequireAuth(&MockJwtService{})(echoUser(&captured))

		for _, header := range []string{"valid-token", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
		}
		assert.Nil(t, captured)
	})

	t.Run("invalid token is a 401", func(t *testing.T) {
		var captured *domain.User
		handler := RequireAuth(&MockJwtService{})(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, captured)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("valid token attaches the user", func(t *testing.T) {
		jwtService := &MockJwtService{decodeTokenFunc: func(token string) (domain.User, error) {
			return domain.User{Id: 7, Username: "alice"}, nil
		}}
		var captured *domain.User
		handler := OptionalAuth(jwtService)(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "alice", captured.Username)
	})

	t.Run("no token still passes through", func(t *testing.T) {
		var captured *domain.User
		handler := OptionalAuth(&MockJwtService{})(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, captured)
	})

	t.Run("invalid token passes through unauthenticated", func(t *testing.T) {
		var captured *domain.User
		handler := OptionalAuth(&MockJwtService{})(echoUser(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, captured)
	})
}
