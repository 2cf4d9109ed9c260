package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/infrastructure/auth"
	"github.com/you/runmate/internal/mocks"
)

func setupAuthedRouter(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, userRepo domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, sessionRepo, userRepo), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	activeUser := func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, IsActive: true}, nil
	}
	liveSession := func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return &domain.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}

	tests := []struct {
		name           string
		header         string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name:   "valid token",
			header: "Bearer good-token",
			setupMocks: func(_ *mocks.MockTokenService, sessions *mocks.MockSessionRepository, users *mocks.MockUserRepository) {
				sessions.FindByIDFunc = liveSession
				users.FindByIDFunc = activeUser
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer header",
			header:         "Basic abc",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer stale-token",
			setupMocks: func(tokens *mocks.MockTokenService, _ *mocks.MockSessionRepository, _ *mocks.MockUserRepository) {
				tokens.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "session gone",
			header: "Bearer good-token",
			setupMocks: func(_ *mocks.MockTokenService, sessions *mocks.MockSessionRepository, users *mocks.MockUserRepository) {
				users.FindByIDFunc = activeUser
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "session belongs to a different user",
			header: "Bearer good-token",
			setupMocks: func(_ *mocks.MockTokenService, sessions *mocks.MockSessionRepository, users *mocks.MockUserRepository) {
				sessions.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return &domain.Session{ID: sessionID, UserID: 99, ExpiresAt: time.Now().Add(time.Hour)}, nil
				}
				users.FindByIDFunc = activeUser
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "user deleted after token issuance",
			header: "Bearer good-token",
			setupMocks: func(_ *mocks.MockTokenService, sessions *mocks.MockSessionRepository, _ *mocks.MockUserRepository) {
				sessions.FindByIDFunc = liveSession
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mocks.NewMockTokenService()
			sessions := mocks.NewMockSessionRepository()
			users := mocks.NewMockUserRepository()
			tt.setupMocks(tokens, sessions, users)

			r := setupAuthedRouter(tokens, sessions, users)
			w := doGet(r, tt.header)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

// A refresh token carries a live session id, so only the token-type check
// keeps it out of the access path.
func TestAuthMiddleware_RejectsRefreshTokenAsBearer(t *testing.T) {
	tokenSvc := auth.NewJWTService("test-secret", "runmate", time.Hour, 7*24*time.Hour)

	sessions := mocks.NewMockSessionRepository()
	sessions.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return &domain.Session{ID: sessionID, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	users := mocks.NewMockUserRepository()
	users.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id, IsActive: true}, nil
	}

	r := setupAuthedRouter(tokenSvc, sessions, users)

	refresh, err := tokenSvc.GenerateRefreshToken(42, "+15551230001", "user", "session-42")
	if err != nil {
		t.Fatalf("generate refresh failed: %v", err)
	}
	if w := doGet(r, "Bearer "+refresh); w.Code != http.StatusUnauthorized {
		t.Errorf("refresh token as bearer: expected 401, got %d: %s", w.Code, w.Body.String())
	}

	access, err := tokenSvc.GenerateAccessToken(42, "+15551230001", "user", "session-42")
	if err != nil {
		t.Fatalf("generate access failed: %v", err)
	}
	if w := doGet(r, "Bearer "+access); w.Code != http.StatusOK {
		t.Errorf("access token as bearer: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
