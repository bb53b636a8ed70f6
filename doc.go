/*
Package qbt is a client for the qBittorrent Web API (v2).

Highlights:
  - Lazy login with transparent re-authentication when the session expires
  - Automatic retries with exponential backoff for transient failures
  - Typed errors classifying transport and API failures
  - Endpoints introduced in later Web API versions are refused locally with
    a typed error when the connected server is too old
  - Torrent values returned by listings can act on the server directly

Quick start:

	import (
	    "log"
	    qbt "github.com/rmartin16/qbittorrent-api"
	)

	func main() {
	    client, err := qbt.New(qbt.Config{
	        Host:     "localhost:8080",
	        Username: "admin",
	        Password: "password",
	    })
	    if err != nil {
	        log.Fatal(err)
	    }
	    defer client.Logout()

	    torrents, err := client.Torrents(qbt.TorrentInfoOptions{Filter: "downloading"})
	    if err != nil {
	        log.Fatal(err)
	    }
	    for _, t := range torrents {
	        _ = t.Pause()
	    }
	}
*/
package qbt
