package qbt

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ParseMagnetLink extracts information from a magnet link.
func ParseMagnetLink(magnetURI string) (*MagnetLink, error) {
	if !strings.HasPrefix(magnetURI, "magnet:?") {
		return nil, errors.New("invalid magnet link format")
	}

	values, err := url.ParseQuery(strings.TrimPrefix(magnetURI, "magnet:?"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse magnet link query")
	}

	magnet := &MagnetLink{}

	// xt carries the info hash, v1 as urn:btih: and v2 as urn:btmh:.
	for _, xt := range values["xt"] {
		switch {
		case strings.HasPrefix(xt, "urn:btih:"):
			magnet.Hash = strings.TrimPrefix(xt, "urn:btih:")
		case strings.HasPrefix(xt, "urn:btmh:"):
			if magnet.Hash == "" {
				magnet.Hash = strings.TrimPrefix(xt, "urn:btmh:")
			}
		default:
			if magnet.Hash == "" {
				magnet.Hash = xt
			}
		}
	}

	magnet.DisplayName = values.Get("dn")
	magnet.Trackers = values["tr"]

	// Optional fields
	magnet.ExactLength = values.Get("xl")
	magnet.ExactSource = values.Get("xs")
	magnet.Keywords = values.Get("kt")
	magnet.AcceptableSource = values.Get("as")

	return magnet, nil
}
