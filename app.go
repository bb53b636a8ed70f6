package qbt

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Version returns the qBittorrent application version, e.g. "v4.6.2".
func (c *Client) Version() (string, error) {
	return c.getText(NameApplication, "version", nil)
}

// WebAPIVersion returns the Web API version, e.g. "2.9.3".
func (c *Client) WebAPIVersion() (string, error) {
	return c.getText(NameApplication, "webapiVersion", nil)
}

// BuildInfo returns library versions the server was built against.
func (c *Client) BuildInfo() (*BuildInfo, error) {
	if err := c.checkEndpointVersion(NameApplication, "buildInfo"); err != nil {
		return nil, err
	}
	var info BuildInfo
	if err := c.getJSON(NameApplication, "buildInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Shutdown stops the qBittorrent application.
func (c *Client) Shutdown() error {
	_, err := c.post(NameApplication, "shutdown", nil)
	return err
}

// Preferences returns all application preferences. Keys are kept dynamic so
// values unknown to this library survive a read-modify-write cycle.
func (c *Client) Preferences() (Preferences, error) {
	var prefs Preferences
	if err := c.getJSON(NameApplication, "preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SetPreferences applies a partial preferences update. Only the keys present
// in prefs are changed.
func (c *Client) SetPreferences(prefs Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "error encoding preferences")
	}
	_, err = c.post(NameApplication, "setPreferences", formValues("json", string(data)))
	return err
}

// DefaultSavePath returns the default directory for saving downloads.
func (c *Client) DefaultSavePath() (string, error) {
	return c.getText(NameApplication, "defaultSavePath", nil)
}
