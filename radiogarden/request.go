package radiogarden

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"radio-garden-client/internal/platform/obs"
)

// maxErrorBody bounds how much of a non-2xx body is kept on StatusError.
const maxErrorBody = 512

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// do sends req and turns transport failures and non-2xx responses into typed
// errors. On success the caller owns resp.Body.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &StatusError{
			Op:   op,
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	return resp, nil
}

// getJSON issues a GET against path and decodes a 2xx body into T.
func getJSON[T any](
	ctx context.Context,
	c *Client,
	op string,
	path string,
	query url.Values,
) (_ *T, err error) {
	defer obs.Time(ctx, op)(&err)

	req, err := c.newRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	return &out, nil
}

// head issues a HEAD against path, following redirects, and returns the URL
// of the final request.
func head(ctx context.Context, c *Client, op string, path string) (_ string, err error) {
	defer obs.Time(ctx, op)(&err)

	req, err := c.newRequest(ctx, http.MethodHead, path, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.do(op, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.Request == nil || resp.Request.URL == nil {
		return "", &StatusError{Op: op, Code: resp.StatusCode, Body: "no final request url"}
	}

	return resp.Request.URL.String(), nil
}
