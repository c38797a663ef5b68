package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/base-buzz/hive/internal/storage"
)

func (s server) listTrendingHashtags(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /hashtags/trending Hashtags ListTrendingHashtags
	//
	// Return top tags by usage count, descending, ties broken by tag.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: HashtagCounts

	limit := uint64(defaultLimit)
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			writeError(w, http.StatusBadRequest, "failed to parse limit")
			return
		}
		limit = parsed
	}

	hashtags, err := s.s.GetTrendingHashtags(r.Context(), uint16(limit))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list trending hashtags: %s", err.Error())
		return
	}

	out := make([]HashtagCount, len(hashtags))
	for i, h := range hashtags {
		out[i] = HashtagCount{Tag: h.Tag, Count: h.Count}
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) listPostsByHashtag(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /hashtags/{tag} Hashtags ListPostsByHashtag
	//
	// Return posts containing '#tag', newest first. The match is a
	// case-insensitive substring match.
	//
	// ---
	// responses:
	//   '200':
	//     description: Posts

	tag := chi.URLParam(r, "tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, "invalid tag")
		return
	}

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.GetPostsByHashtag(r.Context(), tag, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list posts by hashtag: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) search(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /search Search Search
	//
	// Combined user and post search.
	//
	// ---
	// parameters:
	// - name: query
	//   in: query
	//   required: true
	// responses:
	//   '200':
	//     description: SearchResponse

	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.s.SearchUsers(r.Context(), query, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to search users: %s", err.Error())
		return
	}

	posts, err := s.s.SearchPosts(r.Context(), query, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to search posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, SearchResponse{
		Users: toAPIUsers(users),
		Posts: toAPIPosts(posts),
	})
}

func (s server) getPlatformMetrics(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /metrics Metrics GetPlatformMetrics
	//
	// Return best-effort platform-wide counts. Counts are queried
	// independently and are not a consistent cut.
	//
	// ---
	// responses:
	//   '200':
	//     description: PlatformMetrics

	metrics, err := s.s.GetPlatformMetrics(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get platform metrics: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, PlatformMetrics{
		Users:   metrics.Users,
		Posts:   metrics.Posts,
		Likes:   metrics.Likes,
		Follows: metrics.Follows,
	})
}

const priceSymbol = "BUZZ"

func (s server) getTokenPrice(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /price Price GetTokenPrice
	//
	// Return the latest BUZZ price written by the price feed consumer.
	//
	// ---
	// responses:
	//   '200':
	//     description: TokenPrice
	//   '404':
	//     description: no price stored yet
	//     schema:
	//       "$ref": "#/definitions/Error"

	price, err := s.s.GetTokenPrice(r.Context(), priceSymbol)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "price not available")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get token price: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, TokenPrice{
		Symbol:    price.Symbol,
		Price:     price.Price,
		UpdatedAt: uint64(price.UpdatedAt.Unix()),
	})
}
