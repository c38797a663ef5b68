package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

func (s server) listUsers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users Users ListUsers
	//
	// With address returns a single user looked up case-insensitively, with
	// query searches users, with suggestionsFor returns follow suggestions.
	//
	// ---
	// parameters:
	// - name: address
	//   in: query
	//   required: false
	// - name: query
	//   in: query
	//   required: false
	// - name: suggestionsFor
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Users

	q := r.URL.Query()

	if address := q.Get("address"); address != "" {
		user, err := s.s.GetUserByAddress(r.Context(), address)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeInternalErrorf(r.Context(), w, "failed to get user: %s", err.Error())
			return
		}

		writeOK(w, http.StatusOK, toAPIUser(user))
		return
	}

	params, err := extractListParamsFromQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if forUser := q.Get("suggestionsFor"); forUser != "" {
		users, err := s.s.SuggestedUsers(r.Context(), forUser, params.Limit)
		if err != nil {
			writeInternalErrorf(r.Context(), w, "failed to get suggested users: %s", err.Error())
			return
		}

		writeOK(w, http.StatusOK, toAPIUsers(users))
		return
	}

	query := q.Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "address, query or suggestionsFor is required")
		return
	}

	users, err := s.s.SearchUsers(r.Context(), query, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to search users: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIUsers(users))
}

func (s server) createUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users Users CreateUser
	//
	// Register a user by wallet address. Re-registering an address updates the
	// profile and returns the existing user.
	//
	// ---
	// responses:
	//   '201':
	//     description: user

	var req struct {
		Address     string `json:"address"`
		DisplayName string `json:"displayName"`
		AvatarURL   string `json:"avatarUrl"`
		Tier        string `json:"tier"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	user, err := s.s.CreateUser(r.Context(), service.CreateUserParams{
		Address:     req.Address,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Tier:        req.Tier,
	})
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to create user: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIUser(user))
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id} Users GetUser
	//
	// Get user by id.
	//
	// ---
	// responses:
	//   '200':
	//     description: User
	//   '404':
	//     description: user not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	user, err := s.s.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get user: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIUser(user))
}

func (s server) listUserPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/posts Users ListUserPosts
	//
	// Return posts authored by the user, newest first.
	//
	// ---
	// responses:
	//   '200':
	//     description: Posts

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.GetUserPosts(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list user posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getUserStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/stats Users GetUserStats
	//
	// Return the user's post, follower and following counts.
	//
	// ---
	// responses:
	//   '200':
	//     description: UserStats

	stats, err := s.s.GetUserStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get user stats: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, UserStats{
		Posts:     stats.Posts,
		Followers: stats.Followers,
		Following: stats.Following,
	})
}

func (s server) getUserMetrics(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/metrics Users GetUserMetrics
	//
	// Return a best-effort engagement snapshot for the user. Counts are
	// queried independently and are not a consistent cut.
	//
	// ---
	// responses:
	//   '200':
	//     description: UserMetrics

	metrics, err := s.s.GetUserMetrics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get user metrics: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, UserMetrics{
		Posts:               metrics.Posts,
		LikesGiven:          metrics.LikesGiven,
		LikesReceived:       metrics.LikesReceived,
		Bookmarks:           metrics.Bookmarks,
		UnreadNotifications: metrics.UnreadNotifications,
	})
}
