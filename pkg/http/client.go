package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// QueryParam is a single query string entry. Params are encoded in the order given.
type QueryParam struct {
	Key   string
	Value string
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// BaseURL returns the normalized base URL of the client.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends an HTTP request with the given method, path, query parameters and headers.
// It returns the success response, error response, status code, and error if any.
// Errors are one of *TransportError, *StatusError or *DecodeError.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams []QueryParam, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	url := hc.buildURL(path)
	if len(queryParams) > 0 {
		url += "?" + buildQueryString(queryParams)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, nil, 0, &TransportError{Method: method, URL: url, Err: err}
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hc.logger.LogRequest(method, url, flattenHeaders(req.Header))
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		transportErr := &TransportError{Method: method, URL: url, Err: err}
		hc.logger.LogResponseError(method, url, 0, "", time.Since(start), transportErr)
		return nil, nil, 0, transportErr
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start)
	if err != nil {
		transportErr := &TransportError{Method: method, URL: url, Err: err}
		hc.logger.LogResponseError(method, url, resp.StatusCode, "", latency, transportErr)
		return nil, nil, resp.StatusCode, transportErr
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		bodyBytes, err = toUTF8(bodyBytes, respContentType)
		if err != nil {
			decodeErr := &DecodeError{URL: url, ContentType: respContentType, Err: err}
			hc.logger.LogResponseError(method, url, resp.StatusCode, "", latency, decodeErr)
			return nil, nil, resp.StatusCode, decodeErr
		}
		if successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				decodeErr := &DecodeError{URL: url, ContentType: respContentType, Err: err}
				hc.logger.LogResponseError(method, url, resp.StatusCode, string(bodyBytes), latency, decodeErr)
				return nil, nil, resp.StatusCode, decodeErr
			}
		}
		hc.logger.LogResponseSuccess(method, url, resp.StatusCode, string(bodyBytes), latency)
		return successResp, nil, resp.StatusCode, nil
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		hc.logger.LogResponseSuccess(method, url, resp.StatusCode, string(bodyBytes), latency)
		return nil, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       bodyBytes,
	}
	hc.logger.LogResponseError(method, url, resp.StatusCode, string(bodyBytes), latency, statusErr)

	// Error bodies are best effort: a body that does not match errorResp is ignored.
	if errorResp != nil && len(bodyBytes) > 0 {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err == nil {
			return nil, errorResp, resp.StatusCode, statusErr
		}
	}

	return nil, nil, resp.StatusCode, statusErr
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	// Extract the main content type (remove charset and other parameters)
	mainContentType := strings.Split(contentType, ";")[0]
	mainContentType = strings.TrimSpace(mainContentType)

	switch mainContentType {
	case "application/json":
		return json.Unmarshal(bodyBytes, target)
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		// For text/plain, try to set the value directly if target is a string pointer
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		// Fallback to JSON unmarshaling for non-string targets
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		// Default to JSON unmarshaling for unknown content types
		return json.Unmarshal(bodyBytes, target)
	}
}

// toUTF8 transcodes a body whose Content-Type declares a non UTF-8 charset, so raw
// payloads handed to callers are always UTF-8. XML is left alone: its decoder reads
// the charset from the document itself.
func toUTF8(body []byte, contentType string) ([]byte, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || isXML(mediaType) {
		return body, nil
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}

	reader, err := charsetpkg.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func isXML(mediaType string) bool {
	return mediaType == "application/xml" || mediaType == "text/xml"
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	// Ensure path starts with "/" only if path is not empty
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return hc.baseURL + path
}

// buildQueryString builds a query string from parameters, keeping their order.
func buildQueryString(params []QueryParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Key)+"="+EscapeQueryValue(p.Value))
	}

	return strings.Join(parts, "&")
}

// EscapeQueryValue escapes a query value the way browsers' encodeURIComponent does for
// common input: spaces become %20 rather than '+'. Commas stay literal so list-valued
// parameters remain readable.
func EscapeQueryValue(value string) string {
	escaped := url.QueryEscape(value)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.ReplaceAll(escaped, "%2C", ",")
}

func flattenHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ",")
	}
	return out
}
