package qbt_test

import (
	"fmt"
	"log"

	qbt "github.com/rmartin16/qbittorrent-api"
)

func ExampleNew() {
	client, err := qbt.New(qbt.Config{
		Host:     "localhost:8080",
		Username: "admin",
		Password: "password",
	})
	if err != nil {
		log.Fatal(err)
	}

	version, err := client.Version()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(version)
}

func ExampleClient_Torrents() {
	client, _ := qbt.New(qbt.Config{Host: "localhost:8080"})

	torrents, err := client.Torrents(qbt.TorrentInfoOptions{Filter: "downloading"})
	if err != nil {
		log.Fatal(err)
	}

	for _, t := range torrents {
		fmt.Printf("%s: %.0f%%\n", t.Name, t.Progress*100)
		if t.State.IsErrored() {
			_ = t.Recheck()
		}
	}
}

func ExampleClient_AddTorrents() {
	client, _ := qbt.New(qbt.Config{Host: "localhost:8080"})

	err := client.AddTorrents(qbt.AddTorrentOptions{
		URLs:     []string{"magnet:?xt=urn:btih:c9e15763f722f23e98a29decdfae341b98d53056"},
		SavePath: "/downloads/isos",
		Category: "isos",
		Paused:   true,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func ExampleIsUnimplemented() {
	client, _ := qbt.New(qbt.Config{Host: "localhost:8080"})

	if _, err := client.BuildInfo(); qbt.IsUnimplemented(err) {
		fmt.Println("server too old for buildInfo")
	}
}
