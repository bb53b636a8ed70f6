package qbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMagnetLink(t *testing.T) {
	uri := "magnet:?xt=urn:btih:c9e15763f722f23e98a29decdfae341b98d53056" +
		"&dn=Ubuntu+ISO&tr=udp%3A%2F%2Ftracker.example.com%3A1337" +
		"&tr=udp%3A%2F%2Fbackup.example.org%3A6969&xl=6114656256"

	magnet, err := ParseMagnetLink(uri)
	require.NoError(t, err)

	assert.Equal(t, "c9e15763f722f23e98a29decdfae341b98d53056", magnet.Hash)
	assert.Equal(t, "Ubuntu ISO", magnet.DisplayName)
	require.Len(t, magnet.Trackers, 2)
	assert.Equal(t, "udp://tracker.example.com:1337", magnet.Trackers[0])
	assert.Equal(t, "6114656256", magnet.ExactLength)
}

func TestParseMagnetLinkV2(t *testing.T) {
	uri := "magnet:?xt=urn:btmh:1220caf1e1c30e81cb361b9ee167c4aa64228a7fa4fa9f6105232b28ad099f3a302e&dn=test"

	magnet, err := ParseMagnetLink(uri)
	require.NoError(t, err)
	assert.Equal(t, "1220caf1e1c30e81cb361b9ee167c4aa64228a7fa4fa9f6105232b28ad099f3a302e", magnet.Hash)
}

func TestParseMagnetLinkHybridPrefersV1(t *testing.T) {
	uri := "magnet:?xt=urn:btih:aaa111&xt=urn:btmh:1220bbb222"

	magnet, err := ParseMagnetLink(uri)
	require.NoError(t, err)
	assert.Equal(t, "aaa111", magnet.Hash)
}

func TestParseMagnetLinkInvalid(t *testing.T) {
	_, err := ParseMagnetLink("http://example.com/file.torrent")
	assert.Error(t, err)

	_, err = ParseMagnetLink("magnet:?xt=urn%zz")
	assert.Error(t, err)
}
