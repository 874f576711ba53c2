package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
)

type MockAuthService struct {
	MockRegister func(creds domain.Credentials) (domain.User, error)
	MockLogin    func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(creds domain.Credentials) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(creds)
	}
	return domain.User{Id: 1, Name: creds.Name, Email: creds.Email}, nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "token", nil
}

func authRouter(svc *MockAuthService) *mux.Router {
	cfg := &config.Config{Public: config.Public{DefaultPerPage: 10, MaxPerPage: 100}}
	h := New(nil, svc, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")
	return r
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		body := []byte(`{"name":"Alice","email":"alice@example.com","password":"hunter22!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		rr := doRequest(authRouter(&MockAuthService{}), req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp struct {
			Data domain.User `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Alice", resp.Data.Name)
	})

	t.Run("short password rejected", func(t *testing.T) {
		body := []byte(`{"name":"Alice","email":"alice@example.com","password":"short"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		rr := doRequest(authRouter(&MockAuthService{}), req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success sets cookie and returns token", func(t *testing.T) {
		body := []byte(`{"email":"alice@example.com","password":"hunter22!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		rr := doRequest(authRouter(&MockAuthService{}), req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Data LoginResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "token", resp.Data.Token)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, "token", cookies[0].Value)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, error) {
				return "", errors.New(errors.Forbidden, "Invalid email or password")
			},
		}
		body := []byte(`{"email":"alice@example.com","password":"wrong-pass"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		rr := doRequest(authRouter(svc), req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
