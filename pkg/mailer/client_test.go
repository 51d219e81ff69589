package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *Message {
	return &Message{
		From:    "noreply@example.com",
		To:      "john@example.com",
		Subject: "Order Confirmation - ORD-1700000000-1234",
		HTML:    "<p>Hello</p>",
	}
}

func TestClientSend(t *testing.T) {
	var gotAuth string
	var gotBody sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sendResponse{ID: "email-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	err := client.Send(testMessage())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "noreply@example.com", gotBody.From)
	assert.Equal(t, []string{"john@example.com"}, gotBody.To)
	assert.Equal(t, "Order Confirmation - ORD-1700000000-1234", gotBody.Subject)
}

func TestClientSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	err := client.Send(testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClientSend_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down immediately

	client := NewClient(server.URL, "test-key")
	err := client.Send(testMessage())
	require.Error(t, err)
}

func TestConsoleSenderNeverFails(t *testing.T) {
	sender := NewConsoleSender()
	require.NoError(t, sender.Send(testMessage()))
	assert.Equal(t, "console", sender.Name())
}
