package notify

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/ariel-frischer/cmdntfy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Headers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		token        string
		notifType    NotificationType
		wantPriority string
		wantTags     string
		wantAuth     string
	}{
		"success without token": {
			notifType:    TypeSuccess,
			wantPriority: "low",
			wantTags:     "heavy_check_mark",
		},
		"failure without token": {
			notifType:    TypeFailure,
			wantPriority: "high",
			wantTags:     "rotating_light",
		},
		"success with token": {
			token:        "tk_secret",
			notifType:    TypeSuccess,
			wantPriority: "low",
			wantTags:     "heavy_check_mark",
			wantAuth:     "Bearer tk_secret",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := testutil.NewNtfyServer(t)

			sender := NewHTTPSender(srv.URL+"/topic", tt.token, nil)
			err := sender.Send(context.Background(), NewNotification("Executing command echo", "**body**", tt.notifType))
			require.NoError(t, err)

			got := srv.Requests()
			require.Len(t, got, 1)
			req := got[0]

			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "**body**", req.Body)
			assert.Equal(t, "yes", req.Header.Get("X-Markdown"))
			assert.Equal(t, "Executing command echo", req.Header.Get("X-Title"))
			assert.Equal(t, tt.wantPriority, req.Header.Get("X-Priority"))
			assert.Equal(t, tt.wantTags, req.Header.Get("X-Tags"))
			if tt.wantAuth == "" {
				_, present := req.Header["Authorization"]
				assert.False(t, present, "Authorization header must be absent without a token")
			} else {
				assert.Equal(t, tt.wantAuth, req.Header.Get("Authorization"))
			}
		})
	}
}

func TestHTTPSender_ErrorStatusIsNotAFailure(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := testutil.NewNtfyServerWithStatus(t, status)

		err := NewHTTPSender(srv.URL, "", nil).Send(context.Background(), NewNotification("t", "b", TypeSuccess))
		assert.NoError(t, err, "status %d", status)
		assert.Len(t, srv.Requests(), 1)
	}
}

func TestHTTPSender_TransportErrors(t *testing.T) {
	t.Parallel()

	closedURL := testutil.ClosedURL(t)

	tests := map[string]struct {
		url   string
		token string
		title string
	}{
		"connection refused": {
			url:   closedURL,
			title: "title",
		},
		"malformed url": {
			url:   "http://[::1",
			title: "title",
		},
		"unsupported scheme": {
			url:   "not-a-url",
			title: "title",
		},
		"title with newline": {
			url:   closedURL,
			title: "bad\ntitle",
		},
		"token with control character": {
			url:   closedURL,
			token: "tk\x00",
			title: "title",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := NewHTTPSender(tt.url, tt.token, nil).Send(context.Background(), NewNotification(tt.title, "b", TypeFailure))
			require.Error(t, err)

			var transportErr *TransportError
			require.True(t, stderrors.As(err, &transportErr))
			assert.Equal(t, tt.url, transportErr.URL)
		})
	}
}

func TestHTTPSender_InvalidHeaderSendsNothing(t *testing.T) {
	t.Parallel()
	srv := testutil.NewNtfyServer(t)

	err := NewHTTPSender(srv.URL, "", nil).Send(context.Background(), NewNotification("line1\r\nline2", "b", TypeSuccess))
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}
