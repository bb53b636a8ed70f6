package qbt

import (
	"strconv"
	"strings"
)

// StartSearch begins a search across the given plugins and categories.
// Both accept the literal "all" (or "enabled" for plugins). Search
// endpoints require Web API 2.1.1.
func (c *Client) StartSearch(pattern string, plugins, categories []string) (*SearchJob, error) {
	if err := c.checkEndpointVersion(NameSearch, "start"); err != nil {
		return nil, err
	}
	job := &SearchJob{}
	err := c.postJSON(NameSearch, "start", formValues(
		"pattern", pattern,
		"plugins", strings.Join(plugins, "|"),
		"category", strings.Join(categories, "|"),
	), job)
	if err != nil {
		return nil, err
	}
	job.client = c
	return job, nil
}

// StopSearch stops a running search.
func (c *Client) StopSearch(id int64) error {
	if err := c.checkEndpointVersion(NameSearch, "stop"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "stop", formValues("id", strconv.FormatInt(id, 10)))
	return err
}

// SearchStatus returns the status of one search, or of all searches when id
// is 0.
func (c *Client) SearchStatus(id int64) ([]SearchStatus, error) {
	if err := c.checkEndpointVersion(NameSearch, "status"); err != nil {
		return nil, err
	}
	params := formValues()
	if id > 0 {
		params.Set("id", strconv.FormatInt(id, 10))
	}
	var statuses []SearchStatus
	if err := c.getJSON(NameSearch, "status", params, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// SearchResults returns accumulated results of a search. limit 0 means no
// limit; offset may be negative to count back from the end.
func (c *Client) SearchResults(id int64, limit, offset int) (*SearchResults, error) {
	if err := c.checkEndpointVersion(NameSearch, "results"); err != nil {
		return nil, err
	}
	params := formValues("id", strconv.FormatInt(id, 10))
	if limit != 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset != 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var results SearchResults
	if err := c.getJSON(NameSearch, "results", params, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// DeleteSearch discards a search and its results.
func (c *Client) DeleteSearch(id int64) error {
	if err := c.checkEndpointVersion(NameSearch, "delete"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "delete", formValues("id", strconv.FormatInt(id, 10)))
	return err
}

// SearchCategories returns the categories supported by the given plugin,
// or by all plugins when plugin is empty.
func (c *Client) SearchCategories(plugin string) ([]string, error) {
	if err := c.checkEndpointVersion(NameSearch, "categories"); err != nil {
		return nil, err
	}
	params := formValues()
	if plugin != "" {
		params.Set("pluginName", plugin)
	}
	var categories []string
	if err := c.getJSON(NameSearch, "categories", params, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchPlugins returns the installed search plugins.
func (c *Client) SearchPlugins() ([]SearchPlugin, error) {
	if err := c.checkEndpointVersion(NameSearch, "plugins"); err != nil {
		return nil, err
	}
	var plugins []SearchPlugin
	if err := c.getJSON(NameSearch, "plugins", nil, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

// InstallSearchPlugins installs plugins from URLs or local file paths.
func (c *Client) InstallSearchPlugins(sources ...string) error {
	if err := c.checkEndpointVersion(NameSearch, "installPlugin"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "installPlugin",
		formValues("sources", strings.Join(sources, "|")))
	return err
}

// UninstallSearchPlugins removes installed plugins by name.
func (c *Client) UninstallSearchPlugins(names ...string) error {
	if err := c.checkEndpointVersion(NameSearch, "uninstallPlugin"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "uninstallPlugin",
		formValues("names", strings.Join(names, "|")))
	return err
}

// EnableSearchPlugins enables or disables plugins by name.
func (c *Client) EnableSearchPlugins(enable bool, names ...string) error {
	if err := c.checkEndpointVersion(NameSearch, "enablePlugin"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "enablePlugin", formValues(
		"names", strings.Join(names, "|"),
		"enable", strconv.FormatBool(enable),
	))
	return err
}

// UpdateSearchPlugins updates all installed plugins.
func (c *Client) UpdateSearchPlugins() error {
	if err := c.checkEndpointVersion(NameSearch, "updatePlugins"); err != nil {
		return err
	}
	_, err := c.post(NameSearch, "updatePlugins", nil)
	return err
}
