package qbt

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T) (*Client, *map[string]url.Values) {
	t.Helper()
	forms := map[string]url.Values{}
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/search/start", func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			forms["start"] = r.PostForm
			w.Write([]byte(`{"id": 42}`))
		})
		mux.HandleFunc("/api/v2/search/status", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 42, "status": "Running", "total": 17}]`))
		})
		mux.HandleFunc("/api/v2/search/results", func(w http.ResponseWriter, r *http.Request) {
			forms["results"] = r.URL.Query()
			w.Write([]byte(`{
				"status": "Running",
				"total": 17,
				"results": [{"fileName": "ubuntu-24.04.iso", "fileSize": 6114656256, "nbSeeders": 120, "fileUrl": "magnet:?xt=urn:btih:abc123"}]
			}`))
		})
		for _, m := range []string{"stop", "delete"} {
			method := m
			mux.HandleFunc("/api/v2/search/"+method, func(w http.ResponseWriter, r *http.Request) {
				r.ParseForm()
				forms[method] = r.PostForm
				w.WriteHeader(http.StatusOK)
			})
		}
	})
	return newTestClient(t, srv.URL), &forms
}

func TestSearchLifecycle(t *testing.T) {
	client, forms := newSearchServer(t)

	job, err := client.StartSearch("ubuntu", []string{"enabled"}, []string{"all"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), job.ID)
	assert.Equal(t, "ubuntu", (*forms)["start"].Get("pattern"))
	assert.Equal(t, "enabled", (*forms)["start"].Get("plugins"))
	assert.Equal(t, "all", (*forms)["start"].Get("category"))

	status, err := job.Status()
	require.NoError(t, err)
	assert.Equal(t, "Running", status.Status)
	assert.Equal(t, int64(17), status.Total)

	results, err := job.Results(10, 0)
	require.NoError(t, err)
	assert.Equal(t, "42", (*forms)["results"].Get("id"))
	assert.Equal(t, "10", (*forms)["results"].Get("limit"))
	require.Len(t, results.Results, 1)
	assert.Equal(t, "ubuntu-24.04.iso", results.Results[0].FileName)
	assert.Equal(t, int64(120), results.Results[0].NbSeeders)

	require.NoError(t, job.Stop())
	assert.Equal(t, "42", (*forms)["stop"].Get("id"))

	require.NoError(t, job.Delete())
	assert.Equal(t, "42", (*forms)["delete"].Get("id"))
}

func TestSearchGated(t *testing.T) {
	srv, _ := newTestServer(t, "2.1.0", nil)
	client := newTestClient(t, srv.URL)

	_, err := client.StartSearch("ubuntu", []string{"all"}, []string{"all"})
	require.Error(t, err)
	assert.True(t, IsUnimplemented(err))
}

func TestSearchPlugins(t *testing.T) {
	var gotForm url.Values
	srv, _ := newTestServer(t, "2.9.3", func(mux *http.ServeMux) {
		mux.HandleFunc("/api/v2/search/plugins", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"enabled": true, "fullName": "Example Search", "name": "example", "supportedCategories": ["all", "software"], "version": "1.3"}]`))
		})
		mux.HandleFunc("/api/v2/search/enablePlugin", func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			gotForm = r.PostForm
			w.WriteHeader(http.StatusOK)
		})
	})
	client := newTestClient(t, srv.URL)

	plugins, err := client.SearchPlugins()
	require.NoError(t, err)
	require.Len(t, plugins, 1)
	assert.Equal(t, "example", plugins[0].Name)
	assert.True(t, plugins[0].Enabled)

	require.NoError(t, client.EnableSearchPlugins(false, "example"))
	assert.Equal(t, "example", gotForm.Get("names"))
	assert.Equal(t, "false", gotForm.Get("enable"))
}

func TestDetachedSearchJob(t *testing.T) {
	job := &SearchJob{ID: 42}
	_, err := job.Status()
	assert.Error(t, err)
	assert.Error(t, job.Stop())
}
