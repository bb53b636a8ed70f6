package qbt

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainData(t *testing.T) {
	var gotRid string
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/sync/maindata", func(w http.ResponseWriter, r *http.Request) {
			gotRid = r.URL.Query().Get("rid")
			w.Write([]byte(`{
				"rid": 7,
				"full_update": true,
				"torrents": {"abc123": {"name": "test", "state": "downloading"}},
				"categories": {"isos": {"name": "isos", "savePath": "/downloads"}},
				"server_state": {"connection_status": "connected", "dl_info_speed": 4096}
			}`))
		})
	})
	client := newTestClient(t, srv.URL)

	data, err := client.MainData(0)
	require.NoError(t, err)
	assert.Equal(t, "0", gotRid)
	assert.Equal(t, int64(7), data.Rid)
	assert.True(t, data.FullUpdate)
	assert.Equal(t, "connected", data.ServerState.ConnectionStatus)

	torrent, ok := data.Torrents["abc123"]
	require.True(t, ok)
	// The hash key is copied into the record, and the record is attached
	// to the client so actions work on it.
	assert.Equal(t, "abc123", torrent.Hash)
	assert.NotNil(t, torrent.client)
}

func TestMainDataPartialUpdate(t *testing.T) {
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/sync/maindata", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rid": 8, "torrents_removed": ["def456"], "categories_removed": ["old"]}`))
		})
	})
	client := newTestClient(t, srv.URL)

	data, err := client.MainData(7)
	require.NoError(t, err)
	assert.False(t, data.FullUpdate)
	assert.Equal(t, []string{"def456"}, data.TorrentsRemoved)
	assert.Equal(t, []string{"old"}, data.CategoriesRemoved)
}

func TestSyncTorrentPeers(t *testing.T) {
	var gotQuery url.Values
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/sync/torrentPeers", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{
				"rid": 3,
				"full_update": true,
				"peers": {"10.0.0.1:6881": {"ip": "10.0.0.1", "port": 6881, "client": "qBittorrent/4.6.2", "progress": 0.5}}
			}`))
		})
	})
	client := newTestClient(t, srv.URL)

	peers, err := client.SyncTorrentPeers("abc123", 0)
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotQuery.Get("hash"))
	assert.Equal(t, "0", gotQuery.Get("rid"))

	peer, ok := peers.Peers["10.0.0.1:6881"]
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", peer.IP)
	assert.Equal(t, 6881, peer.Port)
}
