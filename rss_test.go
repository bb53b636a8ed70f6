package qbt

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSSFeedManagement(t *testing.T) {
	forms := map[string]url.Values{}
	record := func(mux *http.ServeMux, method string) {
		mux.HandleFunc("/api/v2/rss/"+method, func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			forms[method] = r.PostForm
			w.WriteHeader(http.StatusOK)
		})
	}
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		for _, m := range []string{"addFolder", "addFeed", "removeItem", "moveItem", "refreshItem"} {
			record(mux, m)
		}
	})
	client := newTestClient(t, srv.URL)

	require.NoError(t, client.AddRSSFolder(`linux\distros`))
	assert.Equal(t, `linux\distros`, forms["addFolder"].Get("path"))

	require.NoError(t, client.AddRSSFeed("https://example.com/releases.rss", `linux\distros\feed`))
	assert.Equal(t, "https://example.com/releases.rss", forms["addFeed"].Get("url"))
	assert.Equal(t, `linux\distros\feed`, forms["addFeed"].Get("path"))

	require.NoError(t, client.MoveRSSItem(`linux\distros`, `linux\isos`))
	assert.Equal(t, `linux\distros`, forms["moveItem"].Get("itemPath"))
	assert.Equal(t, `linux\isos`, forms["moveItem"].Get("destPath"))

	require.NoError(t, client.RemoveRSSItem(`linux\isos`))
	assert.Equal(t, `linux\isos`, forms["removeItem"].Get("path"))

	require.NoError(t, client.RefreshRSSItem(`linux\distros\feed`))
	assert.Equal(t, `linux\distros\feed`, forms["refreshItem"].Get("itemPath"))
}

func TestRefreshRSSItemGated(t *testing.T) {
	srv, _ := newTestServer(t, "2.1.0", nil)
	client := newTestClient(t, srv.URL)

	err := client.RefreshRSSItem("feed")
	require.Error(t, err)
	assert.True(t, IsUnimplemented(err))
}

func TestRSSItems(t *testing.T) {
	var gotWithData string
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/rss/items", func(w http.ResponseWriter, r *http.Request) {
			gotWithData = r.URL.Query().Get("withData")
			w.Write([]byte(`{"feed1": {"uid": "u1", "url": "https://example.com/rss"}}`))
		})
	})
	client := newTestClient(t, srv.URL)

	items, err := client.RSSItems(true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotWithData)
	require.Contains(t, items, "feed1")

	var feed map[string]string
	require.NoError(t, json.Unmarshal(items["feed1"], &feed))
	assert.Equal(t, "https://example.com/rss", feed["url"])
}

func TestRSSRules(t *testing.T) {
	var gotForm url.Values
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/rss/setRule", func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			gotForm = r.PostForm
			w.WriteHeader(http.StatusOK)
		})
		mux.HandleFunc("/api/v2/rss/rules", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"distros": {"enabled": true, "mustContain": "amd64", "assignedCategory": "isos", "affectedFeeds": ["https://example.com/rss"]}}`))
		})
	})
	client := newTestClient(t, srv.URL)

	rule := RSSRule{
		Enabled:          true,
		MustContain:      "amd64",
		AssignedCategory: "isos",
		AffectedFeeds:    []string{"https://example.com/rss"},
	}
	require.NoError(t, client.SetRSSRule("distros", rule))
	assert.Equal(t, "distros", gotForm.Get("ruleName"))

	var sent RSSRule
	require.NoError(t, json.Unmarshal([]byte(gotForm.Get("ruleDef")), &sent))
	assert.Equal(t, rule.MustContain, sent.MustContain)
	assert.Equal(t, rule.AffectedFeeds, sent.AffectedFeeds)

	rules, err := client.RSSRules()
	require.NoError(t, err)
	require.Contains(t, rules, "distros")
	assert.True(t, rules["distros"].Enabled)
	assert.Equal(t, "amd64", rules["distros"].MustContain)
}
