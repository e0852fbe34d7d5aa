package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gestiparc/gestiparc/internal/apiserver/database"
	"github.com/gestiparc/gestiparc/internal/apiserver/middleware"
	"github.com/gestiparc/gestiparc/internal/auth/jwt"
	"github.com/gestiparc/gestiparc/internal/common/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testUsername = "Alpha"
	testPassword = "correct horse battery staple"
	testSecret   = "this-is-a-very-long-secret-key-for-testing"
)

type testServer struct {
	router *gin.Engine
	db     database.Database
	jwt    *jwt.Service
}

// newTestServer builds a fully wired engine over an in-memory store with
// one seeded user.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	if err := db.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if err := db.EnsureUser(context.Background(), &database.User{Username: testUsername, Password: string(hash)}); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}

	jwtSvc, err := jwt.NewService(jwt.Config{SecretKey: testSecret, Duration: time.Hour})
	if err != nil {
		t.Fatalf("jwt.NewService: %v", err)
	}

	h := NewHandler(db, jwtSvc, zap.NewNop())
	r := gin.New()
	h.RegisterRoutes(r, middleware.JWTAuthMiddleware(jwtSvc))

	return &testServer{router: r, db: db, jwt: jwtSvc}
}

// token issues a valid token for the seeded user
func (ts *testServer) token(t *testing.T) string {
	t.Helper()
	tok, err := ts.jwt.GenerateToken(testUsername)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

// do performs an authenticated request with an optional JSON body
func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return ts.doWithToken(t, method, path, body, ts.token(t))
}

// doWithToken performs a request carrying an arbitrary bearer token
func (ts *testServer) doWithToken(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// doAnon performs a request without an Authorization header
func (ts *testServer) doAnon(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body into a map
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
