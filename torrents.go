package qbt

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rmartin16/qbittorrent-api/request"
)

// AddTorrentOptions configures torrents/add. At least one of URLs or Files
// must be set; both may be combined in a single call.
type AddTorrentOptions struct {
	// URLs are magnet links, HTTP(S) links, or bare info hashes.
	URLs []string
	// Files are raw .torrent payloads uploaded via multipart.
	Files []request.File

	SavePath           string
	Cookie             string
	Category           string
	Tags               []string
	SkipChecking       bool
	Paused             bool
	RootFolder         *bool
	Rename             string
	UpLimit            int64
	DlLimit            int64
	AutoTMM            *bool
	SequentialDownload bool
	FirstLastPiecePrio bool
}

func (o AddTorrentOptions) form() url.Values {
	form := url.Values{}
	if len(o.URLs) > 0 {
		form.Set("urls", strings.Join(o.URLs, "\n"))
	}
	if o.SavePath != "" {
		form.Set("savepath", o.SavePath)
	}
	if o.Cookie != "" {
		form.Set("cookie", o.Cookie)
	}
	if o.Category != "" {
		form.Set("category", o.Category)
	}
	if len(o.Tags) > 0 {
		form.Set("tags", strings.Join(o.Tags, ","))
	}
	if o.SkipChecking {
		form.Set("skip_checking", "true")
	}
	if o.Paused {
		form.Set("paused", "true")
	}
	if o.RootFolder != nil {
		form.Set("root_folder", strconv.FormatBool(*o.RootFolder))
	}
	if o.Rename != "" {
		form.Set("rename", o.Rename)
	}
	if o.UpLimit > 0 {
		form.Set("upLimit", strconv.FormatInt(o.UpLimit, 10))
	}
	if o.DlLimit > 0 {
		form.Set("dlLimit", strconv.FormatInt(o.DlLimit, 10))
	}
	if o.AutoTMM != nil {
		form.Set("autoTMM", strconv.FormatBool(*o.AutoTMM))
	}
	if o.SequentialDownload {
		form.Set("sequentialDownload", "true")
	}
	if o.FirstLastPiecePrio {
		form.Set("firstLastPiecePrio", "true")
	}
	return form
}

// AddTorrents submits new torrents by URL and/or .torrent file. The server
// answers "Ok." on success and "Fails." when every submission was rejected.
func (c *Client) AddTorrents(opts AddTorrentOptions) error {
	if len(opts.URLs) == 0 && len(opts.Files) == 0 {
		return NewClientError(ErrorCodeMissingParameters,
			"at least one URL or torrent file is required", nil, true)
	}

	var body []byte
	var err error
	if len(opts.Files) > 0 {
		body, err = c.postMultipart(NameTorrents, "add", opts.form(), opts.Files)
	} else {
		body, err = c.post(NameTorrents, "add", opts.form())
	}
	if err != nil {
		return err
	}

	if strings.TrimSpace(string(body)) == "Fails." {
		return NewClientError(ErrorCodeUnsupportedMediaType,
			"torrent was rejected, likely not a valid torrent file or URL", nil, true)
	}
	return nil
}

// TorrentInfoOptions filters torrents/info.
type TorrentInfoOptions struct {
	// Filter is a state filter such as "downloading", "seeding", "paused",
	// "completed", "errored", or "all".
	Filter   string
	Category string
	Tag      string
	Sort     string
	Reverse  bool
	Limit    int
	Offset   int
	Hashes   []string
}

func (o TorrentInfoOptions) params() url.Values {
	params := url.Values{}
	if o.Filter != "" {
		params.Set("filter", o.Filter)
	}
	if o.Category != "" {
		params.Set("category", o.Category)
	}
	if o.Tag != "" {
		params.Set("tag", o.Tag)
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	if o.Reverse {
		params.Set("reverse", "true")
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset != 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	if len(o.Hashes) > 0 {
		params.Set("hashes", joinHashes(o.Hashes))
	}
	return params
}

// Torrents lists torrents matching the given filters. Returned values carry
// a reference to this client so actions can be invoked on them directly.
func (c *Client) Torrents(opts TorrentInfoOptions) ([]*Torrent, error) {
	var torrents []*Torrent
	if err := c.getJSON(NameTorrents, "info", opts.params(), &torrents); err != nil {
		return nil, err
	}

	for _, t := range torrents {
		t.client = c
		if t.MagnetURI != "" {
			// Unparseable magnet URIs are left nil rather than failing
			// the whole listing.
			t.MagnetLink, _ = ParseMagnetLink(t.MagnetURI)
		}
	}
	return torrents, nil
}

// TorrentProperties returns detailed properties of one torrent.
func (c *Client) TorrentProperties(hash string) (*TorrentProperties, error) {
	var props TorrentProperties
	if err := c.getJSON(NameTorrents, "properties", formValues("hash", hash), &props); err != nil {
		return nil, err
	}
	return &props, nil
}

// TorrentTrackers returns the trackers of one torrent.
func (c *Client) TorrentTrackers(hash string) ([]TorrentTracker, error) {
	var trackers []TorrentTracker
	if err := c.getJSON(NameTorrents, "trackers", formValues("hash", hash), &trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

// TorrentWebSeeds returns the web seeds of one torrent.
func (c *Client) TorrentWebSeeds(hash string) ([]WebSeed, error) {
	var seeds []WebSeed
	if err := c.getJSON(NameTorrents, "webseeds", formValues("hash", hash), &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// TorrentFiles returns the file list of one torrent.
func (c *Client) TorrentFiles(hash string) ([]TorrentFile, error) {
	var files []TorrentFile
	if err := c.getJSON(NameTorrents, "files", formValues("hash", hash), &files); err != nil {
		return nil, err
	}
	return files, nil
}

// TorrentPieceStates returns the download state of each piece.
func (c *Client) TorrentPieceStates(hash string) ([]int, error) {
	var states []int
	if err := c.getJSON(NameTorrents, "pieceStates", formValues("hash", hash), &states); err != nil {
		return nil, err
	}
	return states, nil
}

// TorrentPieceHashes returns the SHA-1 hash of each piece.
func (c *Client) TorrentPieceHashes(hash string) ([]string, error) {
	var hashes []string
	if err := c.getJSON(NameTorrents, "pieceHashes", formValues("hash", hash), &hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

// torrentsAction posts a simple hashes-only action such as pause or recheck.
func (c *Client) torrentsAction(method string, hashes []string, extra url.Values) error {
	form := url.Values{"hashes": {joinHashes(hashes)}}
	for k, vs := range extra {
		form[k] = vs
	}
	_, err := c.post(NameTorrents, method, form)
	return err
}

// PauseTorrents pauses the given torrents. Pass "all" to pause everything.
func (c *Client) PauseTorrents(hashes ...string) error {
	return c.torrentsAction("pause", hashes, nil)
}

// ResumeTorrents resumes the given torrents. Pass "all" to resume everything.
func (c *Client) ResumeTorrents(hashes ...string) error {
	return c.torrentsAction("resume", hashes, nil)
}

// DeleteTorrents removes the given torrents, optionally deleting their data
// on disk.
func (c *Client) DeleteTorrents(deleteFiles bool, hashes ...string) error {
	return c.torrentsAction("delete", hashes,
		formValues("deleteFiles", strconv.FormatBool(deleteFiles)))
}

// RecheckTorrents rechecks the given torrents.
func (c *Client) RecheckTorrents(hashes ...string) error {
	return c.torrentsAction("recheck", hashes, nil)
}

// ReannounceTorrents forces the given torrents to reannounce to their
// trackers. Requires Web API 2.0.2.
func (c *Client) ReannounceTorrents(hashes ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "reannounce"); err != nil {
		return err
	}
	return c.torrentsAction("reannounce", hashes, nil)
}

// IncreaseTorrentsPriority moves the given torrents up the queue.
func (c *Client) IncreaseTorrentsPriority(hashes ...string) error {
	return c.torrentsAction("increasePrio", hashes, nil)
}

// DecreaseTorrentsPriority moves the given torrents down the queue.
func (c *Client) DecreaseTorrentsPriority(hashes ...string) error {
	return c.torrentsAction("decreasePrio", hashes, nil)
}

// TopTorrentsPriority moves the given torrents to the top of the queue.
func (c *Client) TopTorrentsPriority(hashes ...string) error {
	return c.torrentsAction("topPrio", hashes, nil)
}

// BottomTorrentsPriority moves the given torrents to the bottom of the queue.
func (c *Client) BottomTorrentsPriority(hashes ...string) error {
	return c.torrentsAction("bottomPrio", hashes, nil)
}

// SetTorrentFilePriority sets the priority of files within a torrent. Use
// the FilePrio constants.
func (c *Client) SetTorrentFilePriority(hash string, fileIDs []int, priority int) error {
	ids := make([]string, len(fileIDs))
	for i, id := range fileIDs {
		ids[i] = strconv.Itoa(id)
	}
	_, err := c.post(NameTorrents, "filePrio", formValues(
		"hash", hash,
		"id", strings.Join(ids, "|"),
		"priority", strconv.Itoa(priority),
	))
	return err
}

// TorrentDownloadLimits returns per-torrent download limits in bytes/s.
// A limit of 0 means unlimited.
func (c *Client) TorrentDownloadLimits(hashes ...string) (map[string]int64, error) {
	limits := map[string]int64{}
	err := c.postJSON(NameTorrents, "downloadLimit",
		formValues("hashes", joinHashes(hashes)), &limits)
	if err != nil {
		return nil, err
	}
	return limits, nil
}

// SetTorrentDownloadLimit sets the download limit in bytes/s for the given
// torrents. 0 removes the limit.
func (c *Client) SetTorrentDownloadLimit(limit int64, hashes ...string) error {
	return c.torrentsAction("setDownloadLimit", hashes,
		formValues("limit", strconv.FormatInt(limit, 10)))
}

// TorrentUploadLimits returns per-torrent upload limits in bytes/s.
func (c *Client) TorrentUploadLimits(hashes ...string) (map[string]int64, error) {
	limits := map[string]int64{}
	err := c.postJSON(NameTorrents, "uploadLimit",
		formValues("hashes", joinHashes(hashes)), &limits)
	if err != nil {
		return nil, err
	}
	return limits, nil
}

// SetTorrentUploadLimit sets the upload limit in bytes/s for the given
// torrents. 0 removes the limit.
func (c *Client) SetTorrentUploadLimit(limit int64, hashes ...string) error {
	return c.torrentsAction("setUploadLimit", hashes,
		formValues("limit", strconv.FormatInt(limit, 10)))
}

// SetTorrentShareLimits sets the seeding ratio and time limits. Use -2 to
// apply the global limit and -1 for no limit. Requires Web API 2.0.1.
func (c *Client) SetTorrentShareLimits(ratioLimit float64, seedingTimeLimit int64, hashes ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "setShareLimits"); err != nil {
		return err
	}
	return c.torrentsAction("setShareLimits", hashes, formValues(
		"ratioLimit", strconv.FormatFloat(ratioLimit, 'f', -1, 64),
		"seedingTimeLimit", strconv.FormatInt(seedingTimeLimit, 10),
	))
}

// SetTorrentLocation moves the given torrents' data to a new directory.
func (c *Client) SetTorrentLocation(location string, hashes ...string) error {
	return c.torrentsAction("setLocation", hashes, formValues("location", location))
}

// RenameTorrent changes a torrent's display name.
func (c *Client) RenameTorrent(hash, name string) error {
	_, err := c.post(NameTorrents, "rename", formValues("hash", hash, "name", name))
	return err
}

// RenameTorrentFile renames a file within a torrent.
func (c *Client) RenameTorrentFile(hash, oldPath, newPath string) error {
	_, err := c.post(NameTorrents, "renameFile", formValues(
		"hash", hash, "oldPath", oldPath, "newPath", newPath))
	return err
}

// SetTorrentCategory assigns the given torrents to a category. An empty
// category clears the assignment.
func (c *Client) SetTorrentCategory(category string, hashes ...string) error {
	return c.torrentsAction("setCategory", hashes, formValues("category", category))
}

// Categories returns all defined categories keyed by name. Requires Web API
// 2.1.0.
func (c *Client) Categories() (map[string]Category, error) {
	if err := c.checkEndpointVersion(NameTorrents, "categories"); err != nil {
		return nil, err
	}
	categories := map[string]Category{}
	if err := c.getJSON(NameTorrents, "categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory defines a new category. A save path requires Web API 2.1.0
// and is refused locally against older servers.
func (c *Client) CreateCategory(name, savePath string) error {
	form := formValues("category", name)
	if savePath != "" {
		if err := c.checkMinVersion(createCategorySavePathMinVersion, "torrents/createCategory savePath"); err != nil {
			return err
		}
		form.Set("savePath", savePath)
	}
	_, err := c.post(NameTorrents, "createCategory", form)
	return err
}

// EditCategory changes a category's save path. Requires Web API 2.1.0.
func (c *Client) EditCategory(name, savePath string) error {
	if err := c.checkEndpointVersion(NameTorrents, "editCategory"); err != nil {
		return err
	}
	_, err := c.post(NameTorrents, "editCategory",
		formValues("category", name, "savePath", savePath))
	return err
}

// RemoveCategories deletes categories. Torrents keep their data.
func (c *Client) RemoveCategories(names ...string) error {
	_, err := c.post(NameTorrents, "removeCategories",
		formValues("categories", strings.Join(names, "\n")))
	return err
}

// Tags returns all defined tags. Requires Web API 2.3.
func (c *Client) Tags() ([]string, error) {
	if err := c.checkEndpointVersion(NameTorrents, "tags"); err != nil {
		return nil, err
	}
	var tags []string
	if err := c.getJSON(NameTorrents, "tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AddTorrentTags adds tags to the given torrents, creating any that do not
// exist. Requires Web API 2.3.
func (c *Client) AddTorrentTags(tags []string, hashes ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "addTags"); err != nil {
		return err
	}
	return c.torrentsAction("addTags", hashes,
		formValues("tags", strings.Join(tags, ",")))
}

// RemoveTorrentTags removes tags from the given torrents. Requires Web API
// 2.3.
func (c *Client) RemoveTorrentTags(tags []string, hashes ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "removeTags"); err != nil {
		return err
	}
	return c.torrentsAction("removeTags", hashes,
		formValues("tags", strings.Join(tags, ",")))
}

// CreateTags defines tags without assigning them. Requires Web API 2.3.
func (c *Client) CreateTags(tags ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "createTags"); err != nil {
		return err
	}
	_, err := c.post(NameTorrents, "createTags",
		formValues("tags", strings.Join(tags, ",")))
	return err
}

// DeleteTags removes tags from all torrents and deletes them. Requires Web
// API 2.3.
func (c *Client) DeleteTags(tags ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "deleteTags"); err != nil {
		return err
	}
	_, err := c.post(NameTorrents, "deleteTags",
		formValues("tags", strings.Join(tags, ",")))
	return err
}

// SetAutoManagement toggles automatic torrent management for the given
// torrents.
func (c *Client) SetAutoManagement(enable bool, hashes ...string) error {
	return c.torrentsAction("setAutoManagement", hashes,
		formValues("enable", strconv.FormatBool(enable)))
}

// ToggleSequentialDownload flips sequential download for the given torrents.
func (c *Client) ToggleSequentialDownload(hashes ...string) error {
	return c.torrentsAction("toggleSequentialDownload", hashes, nil)
}

// ToggleFirstLastPiecePrio flips first/last piece priority for the given
// torrents.
func (c *Client) ToggleFirstLastPiecePrio(hashes ...string) error {
	return c.torrentsAction("toggleFirstLastPiecePrio", hashes, nil)
}

// SetForceStart toggles force start for the given torrents.
func (c *Client) SetForceStart(enable bool, hashes ...string) error {
	return c.torrentsAction("setForceStart", hashes,
		formValues("value", strconv.FormatBool(enable)))
}

// SetSuperSeeding toggles super seeding for the given torrents.
func (c *Client) SetSuperSeeding(enable bool, hashes ...string) error {
	return c.torrentsAction("setSuperSeeding", hashes,
		formValues("value", strconv.FormatBool(enable)))
}

// AddTrackers adds tracker URLs to a torrent.
func (c *Client) AddTrackers(hash string, urls ...string) error {
	_, err := c.post(NameTorrents, "addTrackers", formValues(
		"hash", hash, "urls", strings.Join(urls, "\n")))
	return err
}

// EditTracker replaces one tracker URL with another. Requires Web API 2.2.0.
func (c *Client) EditTracker(hash, origURL, newURL string) error {
	if err := c.checkEndpointVersion(NameTorrents, "editTracker"); err != nil {
		return err
	}
	_, err := c.post(NameTorrents, "editTracker", formValues(
		"hash", hash, "origUrl", origURL, "newUrl", newURL))
	return err
}

// RemoveTrackers removes tracker URLs from a torrent. Requires Web API 2.2.
func (c *Client) RemoveTrackers(hash string, urls ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "removeTrackers"); err != nil {
		return err
	}
	_, err := c.post(NameTorrents, "removeTrackers", formValues(
		"hash", hash, "urls", strings.Join(urls, "|")))
	return err
}

// AddPeers connects the given torrents to peers given as "host:port".
// Requires Web API 2.3.
func (c *Client) AddPeers(peers []string, hashes ...string) error {
	if err := c.checkEndpointVersion(NameTorrents, "addPeers"); err != nil {
		return err
	}
	return c.torrentsAction("addPeers", hashes,
		formValues("peers", strings.Join(peers, "|")))
}
