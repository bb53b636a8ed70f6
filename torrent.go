package qbt

import "github.com/pkg/errors"

// errDetached is returned when an action is invoked on a Torrent or
// SearchJob that was not produced by a Client.
var errDetached = errors.New("value is not attached to a client")

func (t *Torrent) ensureClient() error {
	if t.client == nil {
		return errDetached
	}
	return nil
}

// Sync refetches this torrent's record and updates the value in place.
func (t *Torrent) Sync() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	torrents, err := t.client.Torrents(TorrentInfoOptions{Hashes: []string{t.Hash}})
	if err != nil {
		return err
	}
	if len(torrents) == 0 {
		return NewClientError(ErrorCodeNotFound, "torrent hash(es): "+t.Hash, nil, true)
	}
	client := t.client
	*t = *torrents[0]
	t.client = client
	return nil
}

// Pause pauses this torrent.
func (t *Torrent) Pause() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.PauseTorrents(t.Hash)
}

// Resume resumes this torrent.
func (t *Torrent) Resume() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.ResumeTorrents(t.Hash)
}

// Delete removes this torrent, optionally deleting its data on disk.
func (t *Torrent) Delete(deleteFiles bool) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.DeleteTorrents(deleteFiles, t.Hash)
}

// Recheck rechecks this torrent.
func (t *Torrent) Recheck() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.RecheckTorrents(t.Hash)
}

// Reannounce forces this torrent to reannounce to its trackers.
func (t *Torrent) Reannounce() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.ReannounceTorrents(t.Hash)
}

// IncreasePriority moves this torrent up the queue.
func (t *Torrent) IncreasePriority() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.IncreaseTorrentsPriority(t.Hash)
}

// DecreasePriority moves this torrent down the queue.
func (t *Torrent) DecreasePriority() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.DecreaseTorrentsPriority(t.Hash)
}

// TopPriority moves this torrent to the top of the queue.
func (t *Torrent) TopPriority() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.TopTorrentsPriority(t.Hash)
}

// BottomPriority moves this torrent to the bottom of the queue.
func (t *Torrent) BottomPriority() error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.BottomTorrentsPriority(t.Hash)
}

// SetCategory assigns this torrent to a category.
func (t *Torrent) SetCategory(category string) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetTorrentCategory(category, t.Hash)
}

// AddTags adds tags to this torrent.
func (t *Torrent) AddTags(tags ...string) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.AddTorrentTags(tags, t.Hash)
}

// RemoveTags removes tags from this torrent.
func (t *Torrent) RemoveTags(tags ...string) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.RemoveTorrentTags(tags, t.Hash)
}

// SetLocation moves this torrent's data to a new directory.
func (t *Torrent) SetLocation(location string) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetTorrentLocation(location, t.Hash)
}

// Rename changes this torrent's display name.
func (t *Torrent) Rename(name string) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.RenameTorrent(t.Hash, name)
}

// SetShareLimits sets this torrent's seeding ratio and time limits.
func (t *Torrent) SetShareLimits(ratioLimit float64, seedingTimeLimit int64) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetTorrentShareLimits(ratioLimit, seedingTimeLimit, t.Hash)
}

// SetDownloadLimit sets this torrent's download limit in bytes/s.
func (t *Torrent) SetDownloadLimit(limit int64) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetTorrentDownloadLimit(limit, t.Hash)
}

// SetUploadLimit sets this torrent's upload limit in bytes/s.
func (t *Torrent) SetUploadLimit(limit int64) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetTorrentUploadLimit(limit, t.Hash)
}

// SetForceStart toggles force start for this torrent.
func (t *Torrent) SetForceStart(enable bool) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetForceStart(enable, t.Hash)
}

// SetSuperSeeding toggles super seeding for this torrent.
func (t *Torrent) SetSuperSeeding(enable bool) error {
	if err := t.ensureClient(); err != nil {
		return err
	}
	return t.client.SetSuperSeeding(enable, t.Hash)
}

// Properties returns this torrent's detailed properties.
func (t *Torrent) Properties() (*TorrentProperties, error) {
	if err := t.ensureClient(); err != nil {
		return nil, err
	}
	return t.client.TorrentProperties(t.Hash)
}

// Trackers returns this torrent's trackers.
func (t *Torrent) Trackers() ([]TorrentTracker, error) {
	if err := t.ensureClient(); err != nil {
		return nil, err
	}
	return t.client.TorrentTrackers(t.Hash)
}

// Files returns this torrent's file list.
func (t *Torrent) Files() ([]TorrentFile, error) {
	if err := t.ensureClient(); err != nil {
		return nil, err
	}
	return t.client.TorrentFiles(t.Hash)
}

func (j *SearchJob) ensureClient() error {
	if j.client == nil {
		return errDetached
	}
	return nil
}

// Status returns the current state of this search.
func (j *SearchJob) Status() (*SearchStatus, error) {
	if err := j.ensureClient(); err != nil {
		return nil, err
	}
	statuses, err := j.client.SearchStatus(j.ID)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, NewClientError(ErrorCodeNotFound, "search job not found", nil, true)
	}
	return &statuses[0], nil
}

// Results returns this search's accumulated results.
func (j *SearchJob) Results(limit, offset int) (*SearchResults, error) {
	if err := j.ensureClient(); err != nil {
		return nil, err
	}
	return j.client.SearchResults(j.ID, limit, offset)
}

// Stop stops this search.
func (j *SearchJob) Stop() error {
	if err := j.ensureClient(); err != nil {
		return err
	}
	return j.client.StopSearch(j.ID)
}

// Delete discards this search and its results.
func (j *SearchJob) Delete() error {
	if err := j.ensureClient(); err != nil {
		return err
	}
	return j.client.DeleteSearch(j.ID)
}
