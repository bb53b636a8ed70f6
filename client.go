package qbt

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/rmartin16/qbittorrent-api/request"
)

// APIName is the first URL segment after api/v2 identifying an endpoint group.
type APIName string

const (
	NameAuth        APIName = "auth"
	NameApplication APIName = "app"
	NameLog         APIName = "log"
	NameSync        APIName = "sync"
	NameTransfer    APIName = "transfer"
	NameTorrents    APIName = "torrents"
	NameRSS         APIName = "rss"
	NameSearch      APIName = "search"
)

const apiBasePath = "api/v2"

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultMaxRetries     = 2
	DefaultRetryBackoff   = 500 * time.Millisecond
	DefaultMaxBackoff     = 10 * time.Second
	DefaultBackoffFactor  = 2.0
)

// Environment variables consulted when Config fields are empty.
const (
	EnvHost     = "QBITTORRENTAPI_HOST"
	EnvUsername = "QBITTORRENTAPI_USERNAME"
	EnvPassword = "QBITTORRENTAPI_PASSWORD"
)

// Config contains runtime client settings and credentials.
type Config struct {
	// Host is the qBittorrent WebUI address. A bare "host[:port]" defaults
	// to HTTP; include a scheme to use HTTPS.
	Host string
	// Port is spliced into Host when Host carries no port of its own.
	Port int
	Username string
	Password string
	// BasePath is an extra URL prefix for WebUIs served behind a reverse
	// proxy (e.g. "/qbt").
	BasePath string

	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration

	// TLSSkipVerify disables certificate verification for HTTPS WebUIs
	// using self-signed certificates.
	TLSSkipVerify bool
	// ExtraHeaders are sent with every request.
	ExtraHeaders map[string]string

	Logger *logrus.Logger
}

// RetryConfig configures retry behavior and backoff parameters.
type RetryConfig struct {
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	RetryableCodes []int
}

func newRetryConfig(cfg Config) *RetryConfig {
	rc := &RetryConfig{
		MaxRetries:     cfg.MaxRetries,
		BaseDelay:      cfg.RetryBackoff,
		MaxDelay:       DefaultMaxBackoff,
		BackoffFactor:  DefaultBackoffFactor,
		RetryableCodes: []int{500, 502, 503, 504},
	}
	if rc.MaxRetries <= 0 {
		rc.MaxRetries = DefaultMaxRetries
	}
	if rc.BaseDelay <= 0 {
		rc.BaseDelay = DefaultRetryBackoff
	}
	return rc
}

// Client is a qBittorrent Web API client with transparent login,
// re-authentication, and retries.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	jar     *cookiejar.Jar
	log     *logrus.Logger
	retry   *RetryConfig

	mu         sync.RWMutex
	loggedIn   bool
	apiVersion string

	loginGroup singleflight.Group
}

// New builds a Client from the given configuration. Credentials and host
// fall back to the QBITTORRENTAPI_* environment variables when unset.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		cfg.Host = os.Getenv(EnvHost)
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv(EnvUsername)
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv(EnvPassword)
	}
	if cfg.Host == "" {
		return nil, errors.New("host must be specified")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultRetryBackoff
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	baseURL, err := normalizeBaseURL(cfg.Host, cfg.Port, cfg.BasePath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid host")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error creating cookie jar")
	}

	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
		Jar:     jar,
	}
	if cfg.TLSSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		cfg:     cfg,
		baseURL: baseURL,
		http:    httpClient,
		jar:     jar,
		log:     cfg.Logger,
		retry:   newRetryConfig(cfg),
	}, nil
}

// normalizeBaseURL derives the WebUI base URL from user-supplied host
// pieces. Scheme defaults to HTTP, the port is appended when the host has
// none, and any base path is preserved for reverse-proxied WebUIs.
func normalizeBaseURL(host string, port int, basePath string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(host), "http://") &&
		!strings.HasPrefix(strings.ToLower(host), "https://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", errors.Errorf("cannot parse host from %q", host)
	}
	if port > 0 && u.Port() == "" {
		u.Host = fmt.Sprintf("%s:%d", u.Host, port)
	}

	base := strings.TrimRight(u.String(), "/")
	if basePath != "" {
		base += "/" + strings.Trim(basePath, "/")
	}
	return base, nil
}

// endpointURL builds the full URL for an API method,
// e.g. http://localhost:8080/api/v2/torrents/info.
func (c *Client) endpointURL(name APIName, method string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.baseURL, apiBasePath, name, method)
}

// BaseURL returns the normalized WebUI base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IsLoggedIn reports whether the client holds a session cookie. It does not
// verify the session against the server.
func (c *Client) IsLoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loggedIn
}

// Login authenticates against the WebUI and stores the session cookie.
// Calling Login explicitly is optional; every API method logs in lazily.
func (c *Client) Login() error {
	form := url.Values{
		"username": {c.cfg.Username},
		"password": {c.cfg.Password},
	}

	resp, err := request.Do(http.MethodPost, c.endpointURL(NameAuth, "login"),
		request.WithForm(form),
		request.WithHeaders(c.cfg.ExtraHeaders),
		request.WithHeader("Referer", c.baseURL),
		request.WithClient(c.http),
		request.WithCookieJar(c.jar),
		request.WithUpdateCookies(),
	)
	if err != nil {
		return ClassifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return NewClientError(ErrorCodeForbidden,
			"user's IP is banned for too many failed login attempts", nil, true)
	}
	if resp.StatusCode != http.StatusOK {
		return NewClientError(ErrorCodeLoginFailed,
			fmt.Sprintf("login failed with status %d", resp.StatusCode), nil, true)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "error reading login response")
	}
	if strings.TrimSpace(string(body)) == "Fails." {
		return NewClientError(ErrorCodeLoginFailed,
			fmt.Sprintf("login rejected for user %q", c.cfg.Username), nil, true)
	}
	if !c.hasSessionCookie(resp) {
		return NewClientError(ErrorCodeLoginFailed,
			"no session cookie returned by qBittorrent", nil, true)
	}

	c.mu.Lock()
	c.loggedIn = true
	c.apiVersion = "" // re-resolved lazily for the new session
	c.mu.Unlock()

	c.log.WithField("user", c.cfg.Username).Debug("logged in to qBittorrent")
	return nil
}

func (c *Client) hasSessionCookie(resp *http.Response) bool {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "SID" && cookie.Value != "" {
			return true
		}
	}
	// The jar may already hold a SID from a prior response on this session.
	if u, err := url.Parse(c.baseURL); err == nil {
		for _, cookie := range c.jar.Cookies(u) {
			if cookie.Name == "SID" && cookie.Value != "" {
				return true
			}
		}
	}
	return false
}

// ensureLoggedIn performs a lazy login. Concurrent callers collapse into a
// single login request.
func (c *Client) ensureLoggedIn() error {
	if c.IsLoggedIn() {
		return nil
	}
	_, err, _ := c.loginGroup.Do("login", func() (interface{}, error) {
		if c.IsLoggedIn() {
			return nil, nil
		}
		c.log.Debug("not logged in, attempting login")
		return nil, c.Login()
	})
	return err
}

// invalidateSession drops the cached session state so the next call
// re-authenticates.
func (c *Client) invalidateSession() {
	c.mu.Lock()
	c.loggedIn = false
	c.apiVersion = ""
	c.mu.Unlock()
}

// Logout ends the WebUI session.
func (c *Client) Logout() error {
	resp, err := request.Do(http.MethodPost, c.endpointURL(NameAuth, "logout"),
		request.WithHeaders(c.cfg.ExtraHeaders),
		request.WithClient(c.http),
		request.WithCookieJar(c.jar),
	)
	if err != nil {
		return ClassifyError(err)
	}
	defer resp.Body.Close()

	c.invalidateSession()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return classifyHTTPStatus(resp.StatusCode, string(body), "")
	}
	return nil
}
