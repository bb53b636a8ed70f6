package qbt

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// AddRSSFolder creates a folder in the RSS tree. Nested paths use "\"
// separators, e.g. `linux\distros`.
func (c *Client) AddRSSFolder(path string) error {
	_, err := c.post(NameRSS, "addFolder", formValues("path", path))
	return err
}

// AddRSSFeed subscribes to a feed URL, optionally placing it at the given
// tree path.
func (c *Client) AddRSSFeed(feedURL, path string) error {
	form := formValues("url", feedURL)
	if path != "" {
		form.Set("path", path)
	}
	_, err := c.post(NameRSS, "addFeed", form)
	return err
}

// RemoveRSSItem deletes a feed or folder, including any children.
func (c *Client) RemoveRSSItem(path string) error {
	_, err := c.post(NameRSS, "removeItem", formValues("path", path))
	return err
}

// MoveRSSItem moves or renames a feed or folder.
func (c *Client) MoveRSSItem(itemPath, destPath string) error {
	_, err := c.post(NameRSS, "moveItem",
		formValues("itemPath", itemPath, "destPath", destPath))
	return err
}

// RSSItems returns the RSS tree keyed by path. With withData the feed
// entries include their articles; the value shape varies per item so the
// payload is kept raw.
func (c *Client) RSSItems(withData bool) (map[string]json.RawMessage, error) {
	items := map[string]json.RawMessage{}
	err := c.getJSON(NameRSS, "items",
		formValues("withData", strconv.FormatBool(withData)), &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RefreshRSSItem fetches a feed or folder now instead of waiting for the
// refresh interval. Requires Web API 2.2.
func (c *Client) RefreshRSSItem(path string) error {
	if err := c.checkEndpointVersion(NameRSS, "refreshItem"); err != nil {
		return err
	}
	_, err := c.post(NameRSS, "refreshItem", formValues("itemPath", path))
	return err
}

// SetRSSRule creates or replaces an auto-download rule.
func (c *Client) SetRSSRule(name string, rule RSSRule) error {
	def, err := json.Marshal(rule)
	if err != nil {
		return errors.Wrap(err, "error encoding RSS rule")
	}
	_, err = c.post(NameRSS, "setRule",
		formValues("ruleName", name, "ruleDef", string(def)))
	return err
}

// RenameRSSRule renames an auto-download rule.
func (c *Client) RenameRSSRule(name, newName string) error {
	_, err := c.post(NameRSS, "renameRule",
		formValues("ruleName", name, "newRuleName", newName))
	return err
}

// RemoveRSSRule deletes an auto-download rule.
func (c *Client) RemoveRSSRule(name string) error {
	_, err := c.post(NameRSS, "removeRule", formValues("ruleName", name))
	return err
}

// RSSRules returns all auto-download rules keyed by rule name.
func (c *Client) RSSRules() (map[string]RSSRule, error) {
	rules := map[string]RSSRule{}
	if err := c.getJSON(NameRSS, "rules", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}
