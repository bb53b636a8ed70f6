package qbt

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	var gotQuery url.Values
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/log/main", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`[
				{"id": 1, "message": "qBittorrent v4.6.2 started", "timestamp": 1700000000, "type": 1},
				{"id": 2, "message": "Torrent errored", "timestamp": 1700000060, "type": 8}
			]`))
		})
	})
	client := newTestClient(t, srv.URL)

	entries, err := client.Log(LogOptions{ExcludeNormal: true, LastKnownID: 5})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "Torrent errored", entries[1].Message)

	assert.Equal(t, "false", gotQuery.Get("normal"))
	assert.Equal(t, "true", gotQuery.Get("info"))
	assert.Equal(t, "true", gotQuery.Get("warning"))
	assert.Equal(t, "true", gotQuery.Get("critical"))
	assert.Equal(t, "5", gotQuery.Get("last_known_id"))
}

func TestLogDefaults(t *testing.T) {
	var gotQuery url.Values
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/log/main", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`[]`))
		})
	})
	client := newTestClient(t, srv.URL)

	_, err := client.Log(LogOptions{})
	require.NoError(t, err)
	assert.Equal(t, "true", gotQuery.Get("normal"))
	assert.Equal(t, "-1", gotQuery.Get("last_known_id"))
}

func TestPeerLog(t *testing.T) {
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/log/peers", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1, "ip": "10.0.0.1", "blocked": true, "timestamp": 1700000000, "reason": "manual ban"}]`))
		})
	})
	client := newTestClient(t, srv.URL)

	entries, err := client.PeerLog(-1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Blocked)
	assert.Equal(t, "manual ban", entries[0].Reason)
}
