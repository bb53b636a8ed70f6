package qbt

import (
	"strconv"
	"strings"
)

// TransferInfo returns global transfer statistics, the data shown in the
// WebUI status bar.
func (c *Client) TransferInfo() (*TransferInfo, error) {
	var info TransferInfo
	if err := c.getJSON(NameTransfer, "info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SpeedLimitsMode reports whether alternative speed limits are active.
func (c *Client) SpeedLimitsMode() (bool, error) {
	body, err := c.getText(NameTransfer, "speedLimitsMode", nil)
	if err != nil {
		return false, err
	}
	return body == "1", nil
}

// ToggleSpeedLimitsMode flips alternative speed limits on or off.
func (c *Client) ToggleSpeedLimitsMode() error {
	_, err := c.post(NameTransfer, "toggleSpeedLimitsMode", nil)
	return err
}

// SetSpeedLimitsMode enables or disables alternative speed limits. Unlike
// ToggleSpeedLimitsMode it only toggles when the current state differs from
// the intended one.
func (c *Client) SetSpeedLimitsMode(enabled bool) error {
	current, err := c.SpeedLimitsMode()
	if err != nil {
		return err
	}
	if current == enabled {
		return nil
	}
	return c.ToggleSpeedLimitsMode()
}

// DownloadLimit returns the global download limit in bytes/s; 0 means
// unlimited.
func (c *Client) DownloadLimit() (int64, error) {
	body, err := c.getText(NameTransfer, "downloadLimit", nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(body, 10, 64)
}

// SetDownloadLimit sets the global download limit in bytes/s; 0 removes it.
func (c *Client) SetDownloadLimit(limit int64) error {
	_, err := c.post(NameTransfer, "setDownloadLimit",
		formValues("limit", strconv.FormatInt(limit, 10)))
	return err
}

// UploadLimit returns the global upload limit in bytes/s; 0 means unlimited.
func (c *Client) UploadLimit() (int64, error) {
	body, err := c.getText(NameTransfer, "uploadLimit", nil)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(body, 10, 64)
}

// SetUploadLimit sets the global upload limit in bytes/s; 0 removes it.
func (c *Client) SetUploadLimit(limit int64) error {
	_, err := c.post(NameTransfer, "setUploadLimit",
		formValues("limit", strconv.FormatInt(limit, 10)))
	return err
}

// BanPeers bans peers given as "host:port". Requires Web API 2.3.
func (c *Client) BanPeers(peers ...string) error {
	if err := c.checkEndpointVersion(NameTransfer, "banPeers"); err != nil {
		return err
	}
	_, err := c.post(NameTransfer, "banPeers",
		formValues("peers", strings.Join(peers, "|")))
	return err
}
