// Package api is the HTTP client for the remote feed and reaction services.
// It owns the wire format and converts network failures into the error
// taxonomy the engine understands; transport errors never escape as raw
// net/http errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/driftwave/ripple/internal/config"
	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/logging"
)

// wireVideo is one feed item on the wire.
type wireVideo struct {
	ID                string              `json:"id"`
	MediaURL          string              `json:"mediaUrl"`
	DurationHintMs    int64               `json:"durationHintMs,omitempty"`
	AuthorID          string              `json:"authorId"`
	WaveID            string              `json:"waveId"`
	WaveTitle         string              `json:"waveTitle"`
	CaptionHTML       string              `json:"captionHtml"`
	Reactions         map[string][]string `json:"reactions,omitempty"`
	ConversationID    string              `json:"conversationId,omitempty"`
	ConversationCount int                 `json:"conversationCount,omitempty"`
}

// wirePage is the feed page response envelope.
type wirePage struct {
	Videos     []wireVideo `json:"videos"`
	HasMore    bool        `json:"hasMore"`
	NextCursor string      `json:"nextCursor"`
}

// wireReaction is the reaction submission body.
type wireReaction struct {
	Emoji string `json:"emoji"`
}

// Client talks to the feed and reaction endpoints. It is safe for
// concurrent use; a fetch and several reaction submissions may be in
// flight at once.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         *logging.Logger
}

// NewClient creates a Client from API configuration.
func NewClient(cfg config.APIConfig, log *logging.Logger) *Client {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
		log:         log.WithComponent("api"),
	}
}

// FetchPage requests one page of the feed described by req.
func (c *Client) FetchPage(ctx context.Context, req feed.FetchRequest) (feed.Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("seed", strconv.FormatInt(req.Seed, 10))
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	endpoint := fmt.Sprintf("%s/feed/videos?%s", c.baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return feed.Page{}, errors.NewFeedError("build page request", err).WithCursor(req.Cursor)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return feed.Page{}, errors.NewFeedError("page fetch failed", errors.ErrFeedUnavailable).
			WithCursor(req.Cursor).
			WithGeneration(req.Generation)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return feed.Page{}, errors.NewFeedError(
			fmt.Sprintf("page fetch returned %d", resp.StatusCode),
			errors.ErrFeedUnavailable,
		).WithCursor(req.Cursor).WithGeneration(req.Generation)
	}

	var wire wirePage
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return feed.Page{}, errors.NewFeedError("decode page response", err).WithCursor(req.Cursor)
	}

	page := feed.Page{
		Items:      make([]*feed.VideoItem, 0, len(wire.Videos)),
		HasMore:    wire.HasMore,
		NextCursor: wire.NextCursor,
	}
	for _, v := range wire.Videos {
		item := &feed.VideoItem{
			ID:                v.ID,
			MediaURL:          v.MediaURL,
			DurationHintMs:    v.DurationHintMs,
			AuthorID:          v.AuthorID,
			WaveID:            v.WaveID,
			WaveTitle:         v.WaveTitle,
			CaptionHTML:       v.CaptionHTML,
			ConversationID:    v.ConversationID,
			ConversationCount: v.ConversationCount,
		}
		item.SetReactions(v.Reactions)
		page.Items = append(page.Items, item)
	}

	c.log.Debug("page fetched",
		"count", len(page.Items),
		"has_more", page.HasMore,
		"next_cursor", page.NextCursor,
	)
	return page, nil
}

// SubmitReaction records a reaction against an item. The caller has
// already applied the optimistic local mutation; the result here is
// informational only and a failure must never roll that mutation back.
func (c *Client) SubmitReaction(ctx context.Context, itemID, emoji string) error {
	body, err := json.Marshal(wireReaction{Emoji: emoji})
	if err != nil {
		return errors.NewReactionError("encode reaction", err).WithTarget(itemID, emoji)
	}

	endpoint := fmt.Sprintf("%s/droplets/%s/react", c.baseURL, url.PathEscape(itemID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.NewReactionError("build reaction request", err).WithTarget(itemID, emoji)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.NewReactionError("reaction submit failed", errors.ErrFeedUnavailable).
			WithTarget(itemID, emoji)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewReactionError(
			fmt.Sprintf("reaction submit returned %d", resp.StatusCode),
			errors.ErrReactionRejected,
		).WithTarget(itemID, emoji)
	}
	return nil
}

// PlayableURL returns the media URL with the access token appended as a
// query parameter, ready to hand to a driver. The engine treats media
// URLs as opaque; this is the single injection point. URLs that fail to
// parse are returned unchanged so the driver can surface the load error.
func (c *Client) PlayableURL(mediaURL string) string {
	if c.accessToken == "" {
		return mediaURL
	}
	u, err := url.Parse(mediaURL)
	if err != nil {
		return mediaURL
	}
	q := u.Query()
	q.Set("token", c.accessToken)
	u.RawQuery = q.Encode()
	return u.String()
}
