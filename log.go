package qbt

import (
	"net/url"
	"strconv"
)

// LogOptions filters log/main. Zero-value severity fields include all
// severities; LastKnownID limits output to entries newer than the given ID.
type LogOptions struct {
	ExcludeNormal   bool
	ExcludeInfo     bool
	ExcludeWarning  bool
	ExcludeCritical bool
	LastKnownID     int64
}

func (o LogOptions) params() url.Values {
	params := url.Values{}
	params.Set("normal", strconv.FormatBool(!o.ExcludeNormal))
	params.Set("info", strconv.FormatBool(!o.ExcludeInfo))
	params.Set("warning", strconv.FormatBool(!o.ExcludeWarning))
	params.Set("critical", strconv.FormatBool(!o.ExcludeCritical))
	if o.LastKnownID > 0 {
		params.Set("last_known_id", strconv.FormatInt(o.LastKnownID, 10))
	} else {
		params.Set("last_known_id", "-1")
	}
	return params
}

// Log returns entries from the main application log.
func (c *Client) Log(opts LogOptions) ([]LogEntry, error) {
	var entries []LogEntry
	if err := c.getJSON(NameLog, "main", opts.params(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PeerLog returns entries from the peer ban/connect log newer than
// lastKnownID; pass -1 for everything.
func (c *Client) PeerLog(lastKnownID int64) ([]PeerLogEntry, error) {
	var entries []PeerLogEntry
	err := c.getJSON(NameLog, "peers",
		formValues("last_known_id", strconv.FormatInt(lastKnownID, 10)), &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
