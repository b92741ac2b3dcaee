package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mbelyaev/taskkeeper/internal/common"
)

func TestRegisterAdoptsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Session{
			Token: "tok-123",
			User:  Account{ID: "u1", Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	s, err := c.Register(context.Background(), "Alice", "alice@example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, "tok-123", s.Token)
	require.Equal(t, "tok-123", c.token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestRegisterEmailExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email already exists"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.Register(context.Background(), "Alice", "alice@example.com", "password1")
	require.ErrorIs(t, err, common.ErrorEmailExists)
}

func TestProtectedCallsSendBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.AuthHeaderName) != common.BearerPrefix+"tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode([]Task{{ID: "t1", Title: "buy milk"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.ListTasks(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	c.SetToken("tok-123")

	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "buy milk", tasks[0].Title)
}

func TestTaskNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Task not found"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")

	_, err := c.ToggleTask(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = c.DeleteTask(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")

	_, err := c.ListTasks(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrorUnauthorized))
}
