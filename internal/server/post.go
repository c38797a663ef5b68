package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

func (s server) listTrendingPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListTrendingPosts
	//
	// Return posts ordered by engagement within the trending window.
	//
	// ---
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// - name: page
	//   in: query
	//   required: false
	//   default: 0
	// responses:
	//   '200':
	//     description: Posts
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.GetTrendingPosts(r.Context(), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list trending posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create a post.
	//
	// ---
	// responses:
	//   '201':
	//     description: created post
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.UserID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "userId and content are required")
		return
	}

	post, err := s.s.CreatePost(r.Context(), req.UserID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to create post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/feed Posts GetFeed
	//
	// Return posts authored by followed users plus the caller's own, newest first.
	//
	// ---
	// parameters:
	// - name: userId
	//   in: query
	//   required: true
	// responses:
	//   '200':
	//     description: Posts

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.GetUserFeed(r.Context(), userID, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get feed: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// responses:
	//   '200':
	//     description: Post
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	post, err := s.s.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id} Posts UpdatePost
	//
	// Update post's content. The id is immutable.
	//
	// ---
	// responses:
	//   '200':
	//     description: updated post

	id := chi.URLParam(r, "id")

	var req struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.ID != "" && req.ID != id {
		writeError(w, http.StatusBadRequest, "id is immutable")
		return
	}

	post, err := s.s.UpdatePost(r.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to update post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Posts DeletePost
	//
	// Soft-delete post by id.
	//
	// ---
	// responses:
	//   '204':
	//     description: deleted

	id := chi.URLParam(r, "id")

	if err := s.s.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to delete post: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listPostReplies(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/replies Posts ListPostReplies
	//
	// Return replies of the post, newest first.
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

	posts, err := s.s.GetPostReplies(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list replies: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) createReply(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/replies Posts CreateReply
	//
	// Create a reply to the post.
	//
	// ---
	// responses:
	//   '201':
	//     description: created reply

	var req struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.UserID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "userId and content are required")
		return
	}

	post, err := s.s.CreateReply(r.Context(), req.UserID, chi.URLParam(r, "id"), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to create reply: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) createRepost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/repost Posts CreateRepost
	//
	// Repost the post, optionally with a quote.
	//
	// ---
	// responses:
	//   '201':
	//     description: created repost

	var req struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	post, err := s.s.CreateRepost(r.Context(), req.UserID, chi.URLParam(r, "id"), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to create repost: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}
