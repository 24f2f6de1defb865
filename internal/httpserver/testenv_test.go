package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lexloop/vocab_server/internal/hash"
	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/repo"
	"github.com/lexloop/vocab_server/internal/service"
	"github.com/lexloop/vocab_server/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Word{}))

	gormRepo := &repo.GormRepo{DB: db}
	wordSvc := &service.WordService{Repo: gormRepo}

	deps := &Deps{
		AuthHandler: &AuthHTTP{Svc: &service.AuthService{
			Repo:      gormRepo,
			JWTSecret: testSecret,
			TokenTTL:  time.Hour,
		}},
		UserHandler:   &UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		WordHandler:   &WordHTTP{Svc: wordSvc},
		SearchHandler: &SearchHTTP{Svc: wordSvc},
		JWTSecret:     testSecret,
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, DB: db}
}

// doJSON drives a request through the full router so route-level
// middleware runs exactly as in production.
func (env *testEnv) doJSON(method, path string, payload any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(env.T, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) createUser(username, email, password string) *models.User {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := &models.User{
		Username:     username,
		Email:        email,
		Name:         "Test User",
		PasswordHash: pwHash,
	}
	require.NoError(env.T, env.DB.Create(user).Error)
	return user
}

func (env *testEnv) tokenFor(user *models.User) string {
	env.T.Helper()

	token, err := tokens.Issue(service.ClaimFromUser(user), testSecret, time.Hour)
	require.NoError(env.T, err)
	return token
}
