package stubserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/driftwave/ripple/internal/errors"
	"github.com/driftwave/ripple/internal/feed"
	"github.com/driftwave/ripple/internal/logging"
)

// stubUserID is who reactions are attributed to. The stub serves a single
// anonymous viewer; real attribution belongs to the production service.
const stubUserID = "viewer"

const defaultPageLimit = 10

// wireVideo mirrors the feed service's item representation.
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

type wirePage struct {
	Videos     []wireVideo `json:"videos"`
	HasMore    bool        `json:"hasMore"`
	NextCursor string      `json:"nextCursor"`
}

type wireReaction struct {
	Emoji string `json:"emoji"`
}

// Handler exposes the stub feed endpoints using go-chi.
type Handler struct {
	catalog *Catalog
	log     *logging.Logger
	metrics *Metrics
}

// NewHandler returns a Handler over the given catalog. Metrics may be nil
// to disable metric recording (e.g. in tests).
func NewHandler(catalog *Catalog, log *logging.Logger, m *Metrics) *Handler {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Handler{catalog: catalog, log: log.WithComponent("stubserver"), metrics: m}
}

// ListVideos handles GET /feed/videos?limit=<N>&seed=<seed>&cursor=<token?>.
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	seed, err := strconv.ParseInt(q.Get("seed"), 10, 64)
	if err != nil {
		h.log.Debug("bad seed", "seed", q.Get("seed"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := defaultPageLimit
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	items, hasMore, next, err := h.catalog.Page(seed, q.Get("cursor"), limit)
	if err != nil {
		var nf *errors.NotFoundError
		if errors.As(err, &nf) {
			h.log.Debug("unknown cursor", "cursor", q.Get("cursor"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.log.Error("page failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := wirePage{
		Videos:     make([]wireVideo, 0, len(items)),
		HasMore:    hasMore,
		NextCursor: next,
	}
	for _, item := range items {
		resp.Videos = append(resp.Videos, toWire(item))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)

	h.log.Debug("page served", "seed", seed, "count", len(items), "has_more", hasMore)
	if h.metrics != nil {
		h.metrics.IncPagesServed()
	}
}

// React handles POST /droplets/{droplet_id}/react with body { "emoji": "🔥" }.
func (h *Handler) React(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "droplet_id")
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var body wireReaction
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Emoji == "" {
		h.log.Debug("invalid reaction body", "item", itemID)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	changed, err := h.catalog.React(itemID, body.Emoji, stubUserID)
	if err != nil {
		var nf *errors.NotFoundError
		if errors.As(err, &nf) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.log.Error("reaction failed", "item", itemID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Debug("reaction recorded", "item", itemID, "emoji", body.Emoji, "changed", changed)
	w.WriteHeader(http.StatusNoContent)
	if h.metrics != nil {
		h.metrics.IncReactions()
	}
}

func toWire(item *feed.VideoItem) wireVideo {
	v := wireVideo{
		ID:                item.ID,
		MediaURL:          item.MediaURL,
		DurationHintMs:    item.DurationHintMs,
		AuthorID:          item.AuthorID,
		WaveID:            item.WaveID,
		WaveTitle:         item.WaveTitle,
		CaptionHTML:       item.CaptionHTML,
		ConversationID:    item.ConversationID,
		ConversationCount: item.ConversationCount,
	}
	if emojis := item.ReactionEmojis(); len(emojis) > 0 {
		v.Reactions = make(map[string][]string, len(emojis))
		for _, emoji := range emojis {
			v.Reactions[emoji] = item.ReactionUsers(emoji)
		}
	}
	return v
}
