package qbt

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// Web API versions in which endpoints first appeared. Calls against an
// older server are refused locally with ErrorCodeUnimplemented rather than
// sent to fail with a 404.
var endpointMinVersions = map[string]string{
	"app/buildInfo":           "2.3",
	"torrents/editTracker":    "2.2.0",
	"torrents/removeTrackers": "2.2",
	"torrents/reannounce":     "2.0.2",
	"torrents/setShareLimits": "2.0.1",
	"torrents/addPeers":       "2.3",
	"torrents/categories":     "2.1.0",
	"torrents/editCategory":   "2.1.0",
	"torrents/tags":           "2.3",
	"torrents/addTags":        "2.3",
	"torrents/removeTags":     "2.3",
	"torrents/createTags":     "2.3",
	"torrents/deleteTags":     "2.3",
	"transfer/banPeers":       "2.3",
	"rss/refreshItem":         "2.2",
	"search/start":            "2.1.1",
	"search/stop":             "2.1.1",
	"search/status":           "2.1.1",
	"search/results":          "2.1.1",
	"search/delete":           "2.1.1",
	"search/categories":       "2.1.1",
	"search/plugins":          "2.1.1",
	"search/installPlugin":    "2.1.1",
	"search/uninstallPlugin":  "2.1.1",
	"search/enablePlugin":     "2.1.1",
	"search/updatePlugins":    "2.1.1",
}

// createCategory accepted a save path starting with Web API 2.1.0.
const createCategorySavePathMinVersion = "2.1.0"

// cachedWebAPIVersion returns the connected server's Web API version,
// fetching it on first use. The cache is dropped on (re-)login since a
// different server may answer the next session.
func (c *Client) cachedWebAPIVersion() (string, error) {
	c.mu.RLock()
	v := c.apiVersion
	c.mu.RUnlock()
	if v != "" {
		return v, nil
	}

	v, err := c.WebAPIVersion()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.apiVersion = v
	c.mu.Unlock()
	return v, nil
}

// checkEndpointVersion verifies the connected server's Web API is new enough
// for the given endpoint.
func (c *Client) checkEndpointVersion(name APIName, method string) error {
	minRaw, gated := endpointMinVersions[fmt.Sprintf("%s/%s", name, method)]
	if !gated {
		return nil
	}
	return c.checkMinVersion(minRaw, fmt.Sprintf("%s/%s", name, method))
}

func (c *Client) checkMinVersion(minRaw, endpoint string) error {
	current, err := c.cachedWebAPIVersion()
	if err != nil {
		return err
	}

	curVer, err := version.NewVersion(current)
	if err != nil {
		// Unparseable server version: let the call through rather than
		// refuse it on bad data.
		c.log.WithField("version", current).Debug("cannot parse Web API version")
		return nil
	}
	minVer := version.Must(version.NewVersion(minRaw))

	if curVer.LessThan(minVer) {
		return NewClientError(
			ErrorCodeUnimplemented,
			fmt.Sprintf("%s requires Web API >= %s, server has %s", endpoint, minRaw, current),
			nil,
			true,
		)
	}
	return nil
}
