package credentials

import (
	"context"
	"encoding/json"
	authutils "ets-backend/lib/utils/auth-utils"
	credentialsapimodels "ets-backend/models/api/credentials"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type storeStub struct {
	mu      sync.Mutex
	records map[string]credentialsapimodels.Record
	err     error
}

func (s *storeStub) Get(ctx context.Context, email string) (*credentialsapimodels.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.records[email]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *storeStub) Create(ctx context.Context, rec credentialsapimodels.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.Email]; ok {
		return false, nil
	}
	s.records[rec.Email] = rec
	return true, nil
}

const testSecret = "credentials-secret"

func call(t *testing.T, handler Provider, method, path, body string) (int, credentialsapimodels.Response) {
	app := NewApp(handler, 0)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	result := credentialsapimodels.Response{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestCredentialService(t *testing.T) {
	credentialStore := &storeStub{records: map[string]credentialsapimodels.Record{}}
	handler := NewInstance(credentialStore, Settings{
		JWTSecret:  testSecret,
		TokenTTL:   4 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	t.Run("signup check", func(t *testing.T) {
		status, resp := call(t, handler, http.MethodPost, "/signup", `{"name":"Drone","email":"drone@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "Sign Up Successful", resp.Message)
		claims, err := authutils.Parse(testSecret, resp.Token)
		require.NoError(t, err)
		require.Equal(t, "drone@example.com", claims["email"])
		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		require.WithinDuration(t, time.Now().Add(4*time.Hour), exp.Time, time.Minute)

		rec := credentialStore.records["drone@example.com"]
		require.NotEqual(t, "secret1", rec.Password)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte("secret1")))
	})
	t.Run("signup errors check", func(t *testing.T) {
		status, resp := call(t, handler, http.MethodPost, "/signup", `{"name":"Drone","email":"drone@example.com","password":"other"}`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "User already exists", resp.Message)

		status, resp = call(t, handler, http.MethodPost, "/signup", `{"email":"x@example.com","password":"other"}`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Name, email and password are required", resp.Message)
	})
	t.Run("login check", func(t *testing.T) {
		status, resp := call(t, handler, http.MethodPost, "/login", `{"email":"drone@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "Login Successful", resp.Message)
		require.NotEmpty(t, resp.Token)

		status, resp = call(t, handler, http.MethodPost, "/login", `{"email":"drone@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Invalid password", resp.Message)
		require.Empty(t, resp.Token)

		status, resp = call(t, handler, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"x"}`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "User does not exist", resp.Message)

		status, resp = call(t, handler, http.MethodPost, "/login", `{"email":"drone@example.com"}`)
		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "Email and password are required", resp.Message)
	})
	t.Run("unknown path check", func(t *testing.T) {
		status, resp := call(t, handler, http.MethodPost, "/logout", `{}`)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Invalid path", resp.Message)

		status, resp = call(t, handler, http.MethodGet, "/login", "")
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Invalid path", resp.Message)
	})
	t.Run("store failure check", func(t *testing.T) {
		credentialStore.err = errors.New("connection refused")
		defer func() { credentialStore.err = nil }()
		status, resp := call(t, handler, http.MethodPost, "/login", `{"email":"drone@example.com","password":"secret1"}`)
		require.Equal(t, http.StatusInternalServerError, status)
		require.Equal(t, "Internal server error", resp.Message)
	})
}

func TestCredentialRateLimit(t *testing.T) {
	handler := NewInstance(&storeStub{records: map[string]credentialsapimodels.Record{}}, Settings{
		JWTSecret:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	app := NewApp(handler, 1)
	for idx, expected := range []int{http.StatusBadRequest, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, expected, resp.StatusCode, "request %d", idx+1)
		resp.Body.Close()
	}
}
