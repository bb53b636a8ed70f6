package qbt

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rmartin16/qbittorrent-api/request"
)

// doRequest executes one API call with lazy login, transparent
// re-authentication, and retry with exponential backoff.
//
// GET sends form as the query string; POST sends it URL-encoded in the body,
// or as multipart/form-data when files are present. Transport failures and
// HTTP 5xx are retried up to MaxRetries times; other failures return
// immediately. A 403 on an authenticated endpoint invalidates the session,
// logs in again, and replays the request once.
func (c *Client) doRequest(httpMethod string, name APIName, method string, form url.Values, files []request.File) ([]byte, error) {
	endpoint := c.endpointURL(name, method)
	skipAuth := name == NameAuth
	hashes := hashesHint(form)

	reauthed := false

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			delay := c.backoffDelay(attempt)
			c.log.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"attempt":  attempt,
				"delay":    delay,
			}).Debug("retrying request")
			time.Sleep(delay)
		}

		if !skipAuth {
			if err := c.ensureLoggedIn(); err != nil {
				return nil, err
			}
		}

		opts := []request.Option{
			request.WithHeaders(c.cfg.ExtraHeaders),
			request.WithClient(c.http),
			request.WithCookieJar(c.jar),
		}
		switch {
		case files != nil:
			opts = append(opts, request.WithMultipart(form, "torrents", files))
		case httpMethod == http.MethodGet:
			if len(form) > 0 {
				opts = append(opts, request.WithQuery(form))
			}
		default:
			if len(form) > 0 {
				opts = append(opts, request.WithForm(form))
			}
		}

		resp, err := request.Do(httpMethod, endpoint, opts...)
		if err != nil {
			cerr := ClassifyError(err)
			if cerr.Permanent || attempt >= c.retry.MaxRetries {
				return nil, cerr
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			readErr = errors.Wrap(readErr, "error reading response body")
			if attempt >= c.retry.MaxRetries {
				return nil, readErr
			}
			continue
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		// An expired session answers 403; log in again and replay once.
		if resp.StatusCode == http.StatusForbidden && !skipAuth && !reauthed {
			reauthed = true
			c.log.WithField("endpoint", endpoint).Debug("session expired, re-authenticating")
			c.invalidateSession()
			if err := c.ensureLoggedIn(); err != nil {
				return nil, err
			}
			attempt--
			continue
		}

		herr := classifyHTTPStatus(resp.StatusCode, string(body), hashes)
		if herr.Permanent || attempt >= c.retry.MaxRetries {
			return nil, herr
		}
	}
}

// backoffDelay computes the delay before the given retry attempt,
// growing by BackoffFactor and capped at MaxDelay.
func (c *Client) backoffDelay(attempt int) time.Duration {
	delay := time.Duration(float64(c.retry.BaseDelay) * math.Pow(c.retry.BackoffFactor, float64(attempt-1)))
	if delay > c.retry.MaxDelay {
		delay = c.retry.MaxDelay
	}
	return delay
}

// hashesHint pulls torrent hashes out of request parameters so a 404 can
// name the offending hash(es).
func hashesHint(form url.Values) string {
	if form == nil {
		return ""
	}
	if h := form.Get("hashes"); h != "" {
		return h
	}
	return form.Get("hash")
}

func (c *Client) get(name APIName, method string, params url.Values) ([]byte, error) {
	return c.doRequest(http.MethodGet, name, method, params, nil)
}

func (c *Client) post(name APIName, method string, form url.Values) ([]byte, error) {
	return c.doRequest(http.MethodPost, name, method, form, nil)
}

func (c *Client) postMultipart(name APIName, method string, form url.Values, files []request.File) ([]byte, error) {
	return c.doRequest(http.MethodPost, name, method, form, files)
}

// getJSON performs a GET and decodes the JSON response into v.
func (c *Client) getJSON(name APIName, method string, params url.Values, v interface{}) error {
	body, err := c.get(name, method, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "error decoding %s/%s response", name, method)
	}
	return nil
}

// postJSON performs a POST and decodes the JSON response into v.
func (c *Client) postJSON(name APIName, method string, form url.Values, v interface{}) error {
	body, err := c.post(name, method, form)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "error decoding %s/%s response", name, method)
	}
	return nil
}

// getText performs a GET and returns the trimmed response body.
func (c *Client) getText(name APIName, method string, params url.Values) (string, error) {
	body, err := c.get(name, method, params)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// joinHashes encodes a multi-hash parameter. qBittorrent separates hashes
// with "|" and accepts the literal "all".
func joinHashes(hashes []string) string {
	return strings.Join(hashes, "|")
}

// formValues builds url.Values from alternating key/value pairs.
func formValues(pairs ...string) url.Values {
	form := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		form.Set(pairs[i], pairs[i+1])
	}
	return form
}
