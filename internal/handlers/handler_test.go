package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ElGunner79/fish-stories/internal/auth"
	"github.com/ElGunner79/fish-stories/internal/config"
	"github.com/ElGunner79/fish-stories/internal/models"
	"github.com/ElGunner79/fish-stories/internal/store"
	"github.com/ElGunner79/fish-stories/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.Video{}, &models.Comment{}, &models.Like{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:  "test-secret-12345678901234567890123456789012",
		UploadsDir: os.TempDir(),
	}

	entityStore := store.New(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	h := NewHandler(cfg, logger, entityStore, tokens)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter()
}

// createTestUser inserts a user directly through the store and returns it
// with a valid bearer token.
func createTestUser(t *testing.T, h *Handler, email string) (*models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{Name: "Test", Surname: "User", Email: email, Password: hashed}
	if err := h.store.Users.Create(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return user, token
}

// doJSON performs a JSON request through the router, attaching the bearer
// token when one is given.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return resp
}
