package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rocket_help/internal/adapter/http/handlers/mocks"
	"rocket_help/internal/usecase"
	"rocket_help/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(sessions usecase.ISessionUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/private", RequireSession(sessions, zap.NewNop()), func(c *gin.Context) {
			claims, ok := Claims(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, claims.UserID)
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)

		w := httptest.NewRecorder()
		newRouter(sessions).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		newRouter(sessions).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Authenticate(gomock.Any(), "jwt").Return(interfaces.TokenClaims{}, usecase.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer jwt")
		w := httptest.NewRecorder()
		newRouter(sessions).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		sessions.EXPECT().Authenticate(gomock.Any(), "jwt").Return(interfaces.TokenClaims{TokenID: "t-1", UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "bearer jwt")
		w := httptest.NewRecorder()
		newRouter(sessions).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "u-1" {
			t.Fatalf("expected 200 u-1, got %d %q", w.Code, w.Body.String())
		}
	})
}
