// resume/client_test.go
package resume_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjunvx/skillfolio/resume"
)

func TestGroqClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body["model"])
		messages := body["messages"].([]any)
		require.Len(t, messages, 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"skills\":[]}"}}]}`))
	}))
	defer server.Close()

	client := resume.NewGroqClient(server.URL, "test-key", "test-model", server.Client())

	out, err := client.Complete(context.Background(), "some prompt")
	require.NoError(t, err)
	require.Equal(t, `{"skills":[]}`, out)
}

func TestGroqClientCompleteNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := resume.NewGroqClient(server.URL, "test-key", "test-model", server.Client())

	_, err := client.Complete(context.Background(), "some prompt")
	require.Error(t, err)
	require.ErrorContains(t, err, "non-200")
}

func TestGroqClientCompleteNoOutput(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "empty content", body: `{"choices":[{"message":{"content":""}}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := resume.NewGroqClient(server.URL, "test-key", "test-model", server.Client())

			_, err := client.Complete(context.Background(), "some prompt")
			require.ErrorIs(t, err, resume.ErrNoOutput)
		})
	}
}

func TestGroqClientCompleteContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer server.Close()

	client := resume.NewGroqClient(server.URL, "test-key", "test-model", server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "some prompt")
	require.Error(t, err)
}
