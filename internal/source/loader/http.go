package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	pkgsource "github.com/goliatone/go-formsite/pkg/source"
)

const defaultUserAgent = "formsite"

func newHTTPClient(options pkgsource.LoaderOptions) *resty.Client {
	var client *resty.Client
	if options.HTTPClient != nil {
		client = resty.NewWithClient(options.HTTPClient)
	} else {
		client = resty.New()
	}

	agent := options.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return client.
		SetRetryCount(0).
		SetHeader("User-Agent", agent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
}

func loadHTTP(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	if client == nil {
		return nil, fmt.Errorf("source loader: http client is not configured")
	}

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &pkgsource.FetchError{Location: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &pkgsource.FetchError{Location: url, Status: resp.StatusCode()}
	}

	data, err := decode(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, &pkgsource.FetchError{Location: url, Err: err}
	}
	return data, nil
}

// decode converts a markup payload to UTF-8 using the declared content type,
// falling back to meta tag sniffing.
func decode(data []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("source loader: decode charset: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source loader: decode charset: %w", err)
	}
	return out, nil
}
