// Package api implements the HTTP client for the remote player listing
// endpoint. All list traffic goes through SearchPlayers; the orchestrator
// is the only caller.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	commonerrors "roster-browser/internal/common/errors"
	"roster-browser/internal/common/httpclient"
	"roster-browser/internal/common/logger"
	"roster-browser/internal/common/observability"
	"roster-browser/internal/roster"
)

// maxErrorBodyBytes caps how much of an error body is kept for diagnostics.
const maxErrorBodyBytes = 2048

type Client struct {
	http    *httpclient.Client
	baseURL string
	logger  logger.Logger
	obs     *observability.Observability
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		http:    httpclient.NewClient(timeout),
		baseURL: baseURL,
		logger:  log,
		obs:     obs,
	}
}

// SearchPlayers evaluates q against the remote endpoint and returns the
// decoded, schema-checked response. Every returned error is a *BrowseError.
func (c *Client) SearchPlayers(ctx context.Context, q roster.Query) (*SearchResponse, error) {
	if c.obs != nil {
		var end func()
		ctx, end = c.obs.StartSpan(ctx, "players.search")
		defer end()
	}

	values, err := q.Values()
	if err != nil {
		return nil, commonerrors.NewInvalidFilterFormatError(err.Error())
	}

	raw, browseErr := c.get(ctx, "/players?"+values.Encode())
	if browseErr != nil {
		return nil, browseErr
	}

	if details := validateListResponse(raw); details != "" {
		c.logger.Warn("Endpoint response failed schema validation", map[string]interface{}{
			"details": details,
		})
		return nil, commonerrors.NewResponseSchemaInvalidError(details)
	}

	var resp SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, commonerrors.NewResponseDecodeFailedError(err)
	}

	c.logger.Debug("Player search completed", map[string]interface{}{
		"page":  resp.Page,
		"count": resp.Count,
		"total": resp.Total,
	})
	return &resp, nil
}

// ColumnMetadata returns the server's column catalog. The query core does
// not depend on it; the column-visibility surface does.
func (c *Client) ColumnMetadata(ctx context.Context) (*ColumnMetadataResponse, error) {
	raw, browseErr := c.get(ctx, "/column-metadata")
	if browseErr != nil {
		return nil, browseErr
	}

	var resp ColumnMetadataResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, commonerrors.NewResponseDecodeFailedError(err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, *commonerrors.BrowseError) {
	url := c.baseURL + path
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, commonerrors.NewEndpointUnreachableError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		c.logger.Warn("Endpoint request failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return nil, commonerrors.NewEndpointUnreachableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Warn("Endpoint returned non-OK status", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode,
		})
		return nil, commonerrors.NewEndpointStatusError(resp.StatusCode, string(snippet))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, commonerrors.NewResponseDecodeFailedError(fmt.Errorf("read body: %w", err))
	}
	return raw, nil
}
