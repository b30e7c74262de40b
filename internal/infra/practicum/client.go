// Package practicum talks to the homework statuses API.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client implements homework.StatusAPI over HTTP.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		logger:     logger.WithField("component", "practicum_client"),
	}
}

// FetchStatuses requests homeworks updated since fromDate. Anything but 200 OK
// is reported as *homework.UpstreamError; there is no retry here.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid homework API endpoint: %w", err)
	}
	q := reqURL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build homework API request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	logCtx := c.logger.WithField("from_date", fromDate)
	logCtx.Debug("Sending request to homework API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("homework API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logCtx.WithField("status_code", resp.StatusCode).Warn("Homework API returned unexpected status")
		return nil, &homework.UpstreamError{StatusCode: resp.StatusCode, Endpoint: c.endpoint}
	}

	var payload any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode homework API response: %w", err)
	}
	logCtx.Debug("Homework API response received")
	return payload, nil
}
