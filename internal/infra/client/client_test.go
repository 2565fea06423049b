package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"contacts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(prisonerSearchURL, manageUsersURL string) *config.Config {
	return &config.Config{
		PrisonerSearch: &config.ClientConfig{BaseURL: prisonerSearchURL, Timeout: time.Second, RetryCount: 1},
		ManageUsers:    &config.ClientConfig{BaseURL: manageUsersURL, Timeout: time.Second},
	}
}

func TestPrisonerSearch_PrisonerExists(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/prisoner/A1234BC":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"prisonerNumber":"A1234BC"}`))
		case "/prisoner/Z9999ZZ":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	search, err := NewPrisonerSearch(testConfig(server.URL, server.URL), newDiscardLogger())
	require.NoError(t, err)

	exists, err := search.PrisonerExists(context.Background(), "A1234BC")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = search.PrisonerExists(context.Background(), "Z9999ZZ")
	require.NoError(t, err)
	assert.False(t, exists)

	calls.Store(0)
	_, err = search.PrisonerExists(context.Background(), "BROKEN")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load(), "5xx is retried once")
}

func TestNewPrisonerSearch_RequiresBaseURL(t *testing.T) {
	_, err := NewPrisonerSearch(&config.Config{}, newDiscardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prisonerSearch.baseUrl")
}

func TestUserDirectory_DisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/JSMITH" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"username":"JSMITH","name":"Jane Smith"}`))

			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	directory, err := NewUserDirectory(testConfig(server.URL, server.URL))
	require.NoError(t, err)

	name, err := directory.DisplayName(context.Background(), "JSMITH")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", name)

	name, err = directory.DisplayName(context.Background(), "NOBODY")
	require.NoError(t, err)
	assert.Empty(t, name)
}
