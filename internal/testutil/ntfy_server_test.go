package testutil

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNtfyServer_RecordsRequests(t *testing.T) {
	t.Parallel()
	srv := NewNtfyServerWithStatus(t, http.StatusTeapot)

	req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader("payload"))
	require.NoError(t, err)
	req.Header.Set("X-Title", "hello")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	got := srv.Requests()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodPost, got[0].Method)
	assert.Equal(t, "payload", got[0].Body)
	assert.Equal(t, "hello", got[0].Header.Get("X-Title"))
}

func TestClosedURL(t *testing.T) {
	t.Parallel()
	_, err := http.Post(ClosedURL(t), "text/plain", strings.NewReader("x"))
	assert.Error(t, err)
}
