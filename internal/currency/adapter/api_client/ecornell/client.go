package ecornell

import (
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
)

// Replies are a single short line; anything larger is not a currency reply.
const maxBodySize = 64 << 10

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// FetchText performs a GET on url and returns the body as text.
func (c *HTTPClient) FetchText(ctx context.Context, url string) (string, error) {
	const op = "ecornell.FetchText"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrapf(withoutURL(err), "%s: create request", op)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(withoutURL(err), "%s: %s", op, req.Method)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Wrapf(entities.ErrUnexpectedStatus, "%s: %s", op, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", errors.Wrapf(err, "%s: read body", op)
	}

	return string(body), nil
}

// withoutURL drops the request URL from err. The query carries the API key.
func withoutURL(err error) error {
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
