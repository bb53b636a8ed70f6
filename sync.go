package qbt

import "strconv"

// MainData returns the sync/maindata payload. Pass the Rid of the previous
// response to receive a partial update containing only what changed since;
// rid 0 requests a full snapshot.
func (c *Client) MainData(rid int64) (*MainData, error) {
	var data MainData
	err := c.getJSON(NameSync, "maindata",
		formValues("rid", strconv.FormatInt(rid, 10)), &data)
	if err != nil {
		return nil, err
	}

	for hash, t := range data.Torrents {
		t.client = c
		// maindata omits the hash inside each torrent record.
		if t.Hash == "" {
			t.Hash = hash
		}
		data.Torrents[hash] = t
	}
	return &data, nil
}

// SyncTorrentPeers returns the peer list of one torrent, partial against the
// previous response's Rid like MainData.
func (c *Client) SyncTorrentPeers(hash string, rid int64) (*TorrentPeers, error) {
	var peers TorrentPeers
	err := c.getJSON(NameSync, "torrentPeers",
		formValues("hash", hash, "rid", strconv.FormatInt(rid, 10)), &peers)
	if err != nil {
		return nil, err
	}
	return &peers, nil
}
