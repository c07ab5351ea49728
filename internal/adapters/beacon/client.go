package beacon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"school-directory-service/internal/domain"
	"school-directory-service/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPStatusError reports a non-success response from the directory API.
type HTTPStatusError struct {
	Code int
	Body string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client implements SchoolDirectory against the Beacon schools API.
//
// Every ListSchools call performs exactly one request; failures are returned
// to the caller as-is. The client is safe for concurrent use.
type Client struct {
	session *http.Client
	url     string
	logger  *zap.Logger
}

func NewClient(url string, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("beacon url is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		url:     url,
		logger:  logger,
	}, nil
}

func (c *Client) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &HTTPStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// ListSchools fetches and decodes the full directory.
func (c *Client) ListSchools(ctx context.Context) (_ []domain.School, err error) {
	defer obs.Time(ctx, c.logger, "beacon.ListSchools")(&err)

	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("list schools: execute request: %w", err)
	}
	defer resp.Body.Close()

	schools, err := DecodeEnvelope(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}

	c.logger.Debug("beacon directory fetched", zap.Int("schools", len(schools)))
	return schools, nil
}
