package request

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Options collects per-request settings applied through functional options.
type Options struct {
	Timeout       time.Duration
	Body          io.Reader
	Headers       map[string]string
	Query         url.Values
	Ctx           context.Context
	Client        *http.Client
	CookieJar     http.CookieJar
	UpdateCookies bool
}

// Option mutates Options before the request is built.
type Option func(*Options)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithBody sets the request body.
func WithBody(body io.Reader) Option {
	return func(o *Options) {
		o.Body = body
	}
}

// WithForm sets an URL-encoded form as the request body along with the
// matching Content-Type header.
func WithForm(form url.Values) Option {
	return func(o *Options) {
		o.Body = strings.NewReader(form.Encode())
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers["Content-Type"] = "application/x-www-form-urlencoded"
	}
}

// File is a named payload for multipart uploads.
type File struct {
	Name string
	Data []byte
}

// WithMultipart encodes form fields and files as a multipart/form-data body.
// Files are sent under the given field name, one part per file.
func WithMultipart(form url.Values, fileField string, files []File) Option {
	return func(o *Options) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for key, values := range form {
			for _, value := range values {
				_ = w.WriteField(key, value)
			}
		}
		for _, f := range files {
			part, err := w.CreateFormFile(fileField, f.Name)
			if err != nil {
				continue
			}
			_, _ = part.Write(f.Data)
		}
		_ = w.Close()

		o.Body = &buf
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers["Content-Type"] = w.FormDataContentType()
	}
}

// WithHeader adds a single header.
func WithHeader(key, value string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// WithHeaders adds multiple headers at once.
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithQuery appends query parameters to the URL.
func WithQuery(query url.Values) Option {
	return func(o *Options) {
		o.Query = query
	}
}

// WithContext attaches a context to the request.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithClient uses the given HTTP client instead of an ad-hoc one. The
// caller keeps control over transport, TLS settings, and connection reuse.
func WithClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

// WithCookieJar stores cookies between requests in the given jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(o *Options) {
		o.CookieJar = jar
	}
}

// WithUpdateCookies saves response cookies back into the cookie jar.
func WithUpdateCookies() Option {
	return func(o *Options) {
		o.UpdateCookies = true
	}
}

// Do executes an HTTP request with the supplied options.
func Do(method, rawURL string, opts ...Option) (*http.Response, error) {
	options := &Options{
		Timeout: 15 * time.Second,
		Ctx:     context.Background(),
	}

	for _, opt := range opts {
		opt(options)
	}

	client := options.Client
	if client == nil {
		client = &http.Client{Timeout: options.Timeout}
	}
	if options.CookieJar != nil && client.Jar == nil {
		client.Jar = options.CookieJar
	}

	if len(options.Query) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL += sep + options.Query.Encode()
	}

	req, err := http.NewRequestWithContext(options.Ctx, method, rawURL, options.Body)
	if err != nil {
		return nil, err
	}

	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	// qBittorrent rejects empty POSTs that carry no Content-Length.
	if method == http.MethodPost && options.Body == nil {
		req.Header.Set("Content-Length", "0")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if options.UpdateCookies && options.CookieJar != nil {
		options.CookieJar.SetCookies(req.URL, resp.Cookies())
	}

	return resp, nil
}
