package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	oidcV3 "github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/ipiloni/phishintel/server/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticVerifier struct {
	token string
}

func (v *staticVerifier) Verify(ctx context.Context, rawIDToken string) (*oidcV3.IDToken, error) {
	if rawIDToken != v.token {
		return nil, errors.New("token mismatch")
	}
	return &oidcV3.IDToken{Subject: "user-1"}, nil
}

func TestNewOIDCAuthenticatorMiddleware(t *testing.T) {
	logger := zap.NewNop()

	t.Run("auth disabled returns noop", func(t *testing.T) {
		cfg := config.Config{AuthConfig: config.AuthConfig{Enable: false}}

		auth, err := NewOIDCAuthenticatorMiddleware(logger, cfg)
		assert.NoError(t, err)
		_, ok := auth.(*OIDCAuthenticatorNoop)
		assert.True(t, ok)
	})

	t.Run("auth enabled without client id returns noop", func(t *testing.T) {
		cfg := config.Config{AuthConfig: config.AuthConfig{
			Enable:    true,
			IssuerURL: "http://keycloak:8080/realms/phishintel-realm",
		}}

		auth, err := NewOIDCAuthenticatorMiddleware(logger, cfg)
		assert.NoError(t, err)
		_, ok := auth.(*OIDCAuthenticatorNoop)
		assert.True(t, ok)
	})

	t.Run("unreachable issuer returns error", func(t *testing.T) {
		issuer := httptest.NewServer(http.NotFoundHandler())
		issuer.Close()

		cfg := config.Config{AuthConfig: config.AuthConfig{
			Enable:    true,
			IssuerURL: issuer.URL,
			ClientID:  "phishintel-client",
		}}

		auth, err := NewOIDCAuthenticatorMiddleware(logger, cfg)
		assert.Error(t, err)
		assert.Nil(t, auth)
	})
}

func TestOIDCAuthenticatorImpl_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "missing header is rejected",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non bearer header is rejected",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token is rejected",
			authHeader:     "Bearer wrong-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token passes through",
			authHeader:     "Bearer good-token",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewOIDCAuthenticatorWithVerifier(zap.NewNop(), &staticVerifier{token: "good-token"})

			router := gin.New()
			router.GET("/api/config/url", auth.Middleware(), func(c *gin.Context) {
				token, exists := c.Get(string(AuthTokenContextKey))
				assert.True(t, exists)
				assert.Equal(t, "good-token", token)
				c.JSON(http.StatusOK, gin.H{"url": "http://localhost:8080"})
			})

			req := httptest.NewRequest(http.MethodGet, "/api/config/url", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestOIDCAuthenticatorNoop_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/config/url", (&OIDCAuthenticatorNoop{}).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config/url", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
