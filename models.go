package qbt

// TorrentState is the lifecycle state reported for a torrent.
type TorrentState string

const (
	StateError              TorrentState = "error"
	StateMissingFiles       TorrentState = "missingFiles"
	StateUploading          TorrentState = "uploading"
	StatePausedUP           TorrentState = "pausedUP"
	StateQueuedUP           TorrentState = "queuedUP"
	StateStalledUP          TorrentState = "stalledUP"
	StateCheckingUP         TorrentState = "checkingUP"
	StateForcedUP           TorrentState = "forcedUP"
	StateAllocating         TorrentState = "allocating"
	StateDownloading        TorrentState = "downloading"
	StateMetaDL             TorrentState = "metaDL"
	StateForcedMetaDL       TorrentState = "forcedMetaDL"
	StatePausedDL           TorrentState = "pausedDL"
	StateQueuedDL           TorrentState = "queuedDL"
	StateStalledDL          TorrentState = "stalledDL"
	StateCheckingDL         TorrentState = "checkingDL"
	StateForcedDL           TorrentState = "forcedDL"
	StateCheckingResumeData TorrentState = "checkingResumeData"
	StateMoving             TorrentState = "moving"
	StateUnknown            TorrentState = "unknown"
)

// IsDownloading reports whether the torrent is fetching data or metadata.
func (s TorrentState) IsDownloading() bool {
	switch s {
	case StateDownloading, StateMetaDL, StateForcedMetaDL, StateStalledDL,
		StateCheckingDL, StatePausedDL, StateQueuedDL, StateForcedDL:
		return true
	}
	return false
}

// IsUploading reports whether the torrent is seeding.
func (s TorrentState) IsUploading() bool {
	switch s {
	case StateUploading, StateStalledUP, StateCheckingUP, StateQueuedUP, StateForcedUP:
		return true
	}
	return false
}

// IsChecking reports whether the torrent is verifying data.
func (s TorrentState) IsChecking() bool {
	switch s {
	case StateCheckingUP, StateCheckingDL, StateCheckingResumeData:
		return true
	}
	return false
}

// IsComplete reports whether the torrent finished downloading.
func (s TorrentState) IsComplete() bool {
	switch s {
	case StateUploading, StateStalledUP, StateCheckingUP, StatePausedUP,
		StateQueuedUP, StateForcedUP:
		return true
	}
	return false
}

// IsErrored reports whether the torrent is in an error state.
func (s TorrentState) IsErrored() bool {
	return s == StateError || s == StateMissingFiles
}

// IsPaused reports whether the torrent is paused.
func (s TorrentState) IsPaused() bool {
	return s == StatePausedUP || s == StatePausedDL
}

// Torrent is one record from torrents/info. It carries a reference back to
// the client that fetched it so server-side actions can be invoked directly
// on the value.
type Torrent struct {
	AddedOn            int64        `json:"added_on"`
	AmountLeft         int64        `json:"amount_left"`
	AutoTMM            bool         `json:"auto_tmm"`
	Availability       float64      `json:"availability"`
	Category           string       `json:"category"`
	Completed          int64        `json:"completed"`
	CompletionOn       int64        `json:"completion_on"`
	ContentPath        string       `json:"content_path"`
	DlLimit            int64        `json:"dl_limit"`
	DlSpeed            int64        `json:"dlspeed"`
	Downloaded         int64        `json:"downloaded"`
	DownloadedSession  int64        `json:"downloaded_session"`
	ETA                int64        `json:"eta"`
	FirstLastPiecePrio bool         `json:"f_l_piece_prio"`
	ForceStart         bool         `json:"force_start"`
	Hash               string       `json:"hash"`
	InfoHashV1         string       `json:"infohash_v1"`
	InfoHashV2         string       `json:"infohash_v2"`
	LastActivity       int64        `json:"last_activity"`
	MagnetURI          string       `json:"magnet_uri"`
	MaxRatio           float64      `json:"max_ratio"`
	MaxSeedingTime     int64        `json:"max_seeding_time"`
	Name               string       `json:"name"`
	NumComplete        int64        `json:"num_complete"`
	NumIncomplete      int64        `json:"num_incomplete"`
	NumLeechs          int64        `json:"num_leechs"`
	NumSeeds           int64        `json:"num_seeds"`
	Priority           int64        `json:"priority"`
	Progress           float64      `json:"progress"`
	Ratio              float64      `json:"ratio"`
	RatioLimit         float64      `json:"ratio_limit"`
	SavePath           string       `json:"save_path"`
	SeedingTime        int64        `json:"seeding_time"`
	SeedingTimeLimit   int64        `json:"seeding_time_limit"`
	SeenComplete       int64        `json:"seen_complete"`
	SeqDl              bool         `json:"seq_dl"`
	Size               int64        `json:"size"`
	State              TorrentState `json:"state"`
	SuperSeeding       bool         `json:"super_seeding"`
	Tags               string       `json:"tags"`
	TimeActive         int64        `json:"time_active"`
	TotalSize          int64        `json:"total_size"`
	Tracker            string       `json:"tracker"`
	UpLimit            int64        `json:"up_limit"`
	Uploaded           int64        `json:"uploaded"`
	UploadedSession    int64        `json:"uploaded_session"`
	UpSpeed            int64        `json:"upspeed"`

	// MagnetLink is parsed from MagnetURI after decoding; nil when the
	// server returned no magnet URI.
	MagnetLink *MagnetLink `json:"-"`

	client *Client
}

// MagnetLink holds fields parsed from a magnet URI.
type MagnetLink struct {
	Hash             string
	DisplayName      string
	Trackers         []string
	ExactLength      string
	ExactSource      string
	Keywords         string
	AcceptableSource string
}

// TorrentProperties is the torrents/properties response.
type TorrentProperties struct {
	AdditionDate           int64   `json:"addition_date"`
	Comment                string  `json:"comment"`
	CompletionDate         int64   `json:"completion_date"`
	CreatedBy              string  `json:"created_by"`
	CreationDate           int64   `json:"creation_date"`
	DlLimit                int64   `json:"dl_limit"`
	DlSpeed                int64   `json:"dl_speed"`
	DlSpeedAvg             int64   `json:"dl_speed_avg"`
	ETA                    int64   `json:"eta"`
	LastSeen               int64   `json:"last_seen"`
	NbConnections          int64   `json:"nb_connections"`
	NbConnectionsLimit     int64   `json:"nb_connections_limit"`
	Peers                  int64   `json:"peers"`
	PeersTotal             int64   `json:"peers_total"`
	PieceSize              int64   `json:"piece_size"`
	PiecesHave             int64   `json:"pieces_have"`
	PiecesNum              int64   `json:"pieces_num"`
	Reannounce             int64   `json:"reannounce"`
	SavePath               string  `json:"save_path"`
	SeedingTime            int64   `json:"seeding_time"`
	Seeds                  int64   `json:"seeds"`
	SeedsTotal             int64   `json:"seeds_total"`
	ShareRatio             float64 `json:"share_ratio"`
	TimeElapsed            int64   `json:"time_elapsed"`
	TotalDownloaded        int64   `json:"total_downloaded"`
	TotalDownloadedSession int64   `json:"total_downloaded_session"`
	TotalSize              int64   `json:"total_size"`
	TotalUploaded          int64   `json:"total_uploaded"`
	TotalUploadedSession   int64   `json:"total_uploaded_session"`
	TotalWasted            int64   `json:"total_wasted"`
	UpLimit                int64   `json:"up_limit"`
	UpSpeed                int64   `json:"up_speed"`
	UpSpeedAvg             int64   `json:"up_speed_avg"`
}

// Tracker status values reported in TorrentTracker.Status.
const (
	TrackerDisabled     = 0
	TrackerNotContacted = 1
	TrackerWorking      = 2
	TrackerUpdating     = 3
	TrackerNotWorking   = 4
)

// TorrentTracker is one record from torrents/trackers.
type TorrentTracker struct {
	Msg           string `json:"msg"`
	NumDownloaded int64  `json:"num_downloaded"`
	NumLeeches    int64  `json:"num_leeches"`
	NumPeers      int64  `json:"num_peers"`
	NumSeeds      int64  `json:"num_seeds"`
	Status        int    `json:"status"`
	Tier          int    `json:"tier"`
	URL           string `json:"url"`
}

// WebSeed is one record from torrents/webseeds.
type WebSeed struct {
	URL string `json:"url"`
}

// File priority values accepted by torrents/filePrio.
const (
	FilePrioIgnore  = 0
	FilePrioNormal  = 1
	FilePrioHigh    = 6
	FilePrioMaximum = 7
)

// TorrentFile is one record from torrents/files.
type TorrentFile struct {
	Availability float64 `json:"availability"`
	Index        int     `json:"index"`
	IsSeed       bool    `json:"is_seed"`
	Name         string  `json:"name"`
	PieceRange   []int64 `json:"piece_range"`
	Priority     int     `json:"priority"`
	Progress     float64 `json:"progress"`
	Size         int64   `json:"size"`
}

// Piece states reported by torrents/pieceStates.
const (
	PieceNotDownloaded = 0
	PieceDownloading   = 1
	PieceDownloaded    = 2
)

// Category is one entry of the torrents/categories response.
type Category struct {
	Name     string `json:"name"`
	SavePath string `json:"savePath"`
}

// BuildInfo is the app/buildInfo response.
type BuildInfo struct {
	Bitness    int    `json:"bitness"`
	Boost      string `json:"boost"`
	Libtorrent string `json:"libtorrent"`
	OpenSSL    string `json:"openssl"`
	Qt         string `json:"qt"`
	Zlib       string `json:"zlib"`
}

// Preferences is the app/preferences response. qBittorrent adds and removes
// keys across releases, so the full set is kept dynamic; unknown keys
// survive a read-modify-write cycle.
type Preferences map[string]interface{}

// TransferInfo is the transfer/info response.
type TransferInfo struct {
	ConnectionStatus string `json:"connection_status"`
	DhtNodes         int64  `json:"dht_nodes"`
	DlInfoData       int64  `json:"dl_info_data"`
	DlInfoSpeed      int64  `json:"dl_info_speed"`
	DlRateLimit      int64  `json:"dl_rate_limit"`
	UpInfoData       int64  `json:"up_info_data"`
	UpInfoSpeed      int64  `json:"up_info_speed"`
	UpRateLimit      int64  `json:"up_rate_limit"`
}

// LogEntry is one record from log/main.
type LogEntry struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Type      int    `json:"type"`
}

// PeerLogEntry is one record from log/peers.
type PeerLogEntry struct {
	ID        int64  `json:"id"`
	IP        string `json:"ip"`
	Blocked   bool   `json:"blocked"`
	Timestamp int64  `json:"timestamp"`
	Reason    string `json:"reason"`
}

// ServerState is the server_state block of sync/maindata.
type ServerState struct {
	AllTimeDl            int64  `json:"alltime_dl"`
	AllTimeUl            int64  `json:"alltime_ul"`
	AverageTimeQueue     int64  `json:"average_time_queue"`
	ConnectionStatus     string `json:"connection_status"`
	DhtNodes             int64  `json:"dht_nodes"`
	DlInfoData           int64  `json:"dl_info_data"`
	DlInfoSpeed          int64  `json:"dl_info_speed"`
	DlRateLimit          int64  `json:"dl_rate_limit"`
	FreeSpaceOnDisk      int64  `json:"free_space_on_disk"`
	GlobalRatio          string `json:"global_ratio"`
	QueuedIOJobs         int64  `json:"queued_io_jobs"`
	Queueing             bool   `json:"queueing"`
	ReadCacheHits        string `json:"read_cache_hits"`
	ReadCacheOverload    string `json:"read_cache_overload"`
	RefreshInterval      int64  `json:"refresh_interval"`
	TotalBuffersSize     int64  `json:"total_buffers_size"`
	TotalPeerConnections int64  `json:"total_peer_connections"`
	TotalQueuedSize      int64  `json:"total_queued_size"`
	TotalWastedSession   int64  `json:"total_wasted_session"`
	UpInfoData           int64  `json:"up_info_data"`
	UpInfoSpeed          int64  `json:"up_info_speed"`
	UpRateLimit          int64  `json:"up_rate_limit"`
	UseAltSpeedLimits    bool   `json:"use_alt_speed_limits"`
	WriteCacheOverload   string `json:"write_cache_overload"`
}

// MainData is the sync/maindata response. With a nonzero rid only changed
// fields are present and FullUpdate is false.
type MainData struct {
	Rid               int64               `json:"rid"`
	FullUpdate        bool                `json:"full_update"`
	Torrents          map[string]Torrent  `json:"torrents"`
	TorrentsRemoved   []string            `json:"torrents_removed"`
	Categories        map[string]Category `json:"categories"`
	CategoriesRemoved []string            `json:"categories_removed"`
	Tags              []string            `json:"tags"`
	TagsRemoved       []string            `json:"tags_removed"`
	ServerState       ServerState         `json:"server_state"`
	Trackers          map[string][]string `json:"trackers"`
}

// PeerInfo is one peer entry of sync/torrentPeers.
type PeerInfo struct {
	Client      string  `json:"client"`
	Connection  string  `json:"connection"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	DlSpeed     int64   `json:"dl_speed"`
	Downloaded  int64   `json:"downloaded"`
	Files       string  `json:"files"`
	Flags       string  `json:"flags"`
	FlagsDesc   string  `json:"flags_desc"`
	IP          string  `json:"ip"`
	Port        int     `json:"port"`
	Progress    float64 `json:"progress"`
	Relevance   float64 `json:"relevance"`
	UpSpeed     int64   `json:"up_speed"`
	Uploaded    int64   `json:"uploaded"`
}

// TorrentPeers is the sync/torrentPeers response.
type TorrentPeers struct {
	Rid        int64               `json:"rid"`
	FullUpdate bool                `json:"full_update"`
	Peers      map[string]PeerInfo `json:"peers"`
	ShowFlags  bool                `json:"show_flags"`
}

// RSSRule is an RSS auto-download rule definition for rss/setRule.
type RSSRule struct {
	Enabled                   bool     `json:"enabled"`
	MustContain               string   `json:"mustContain"`
	MustNotContain            string   `json:"mustNotContain"`
	UseRegex                  bool     `json:"useRegex"`
	EpisodeFilter             string   `json:"episodeFilter"`
	SmartFilter               bool     `json:"smartFilter"`
	PreviouslyMatchedEpisodes []string `json:"previouslyMatchedEpisodes,omitempty"`
	AffectedFeeds             []string `json:"affectedFeeds"`
	IgnoreDays                int      `json:"ignoreDays"`
	LastMatch                 string   `json:"lastMatch,omitempty"`
	AddPaused                 bool     `json:"addPaused"`
	AssignedCategory          string   `json:"assignedCategory"`
	SavePath                  string   `json:"savePath"`
}

// SearchJob identifies a running search. It carries a client reference so
// results can be polled directly on the value.
type SearchJob struct {
	ID int64 `json:"id"`

	client *Client
}

// SearchStatus is one entry of the search/status response.
type SearchStatus struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// SearchResult is one hit in search/results.
type SearchResult struct {
	DescrLink  string `json:"descrLink"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileURL    string `json:"fileUrl"`
	NbLeechers int64  `json:"nbLeechers"`
	NbSeeders  int64  `json:"nbSeeders"`
	SiteURL    string `json:"siteUrl"`
}

// SearchResults is the search/results response.
type SearchResults struct {
	Results []SearchResult `json:"results"`
	Status  string         `json:"status"`
	Total   int64          `json:"total"`
}

// SearchPlugin is one entry of the search/plugins response.
type SearchPlugin struct {
	Enabled             bool     `json:"enabled"`
	FullName            string   `json:"fullName"`
	Name                string   `json:"name"`
	SupportedCategories []string `json:"supportedCategories"`
	URL                 string   `json:"url"`
	Version             string   `json:"version"`
}
