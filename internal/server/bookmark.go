package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/base-buzz/hive/internal/storage"
)

func (s server) getBookmarks(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /bookmarks Bookmarks GetBookmarks
	//
	// With postId returns the bookmark state for a single post, otherwise
	// returns the user's bookmarks with their posts, newest first.
	//
	// ---
	// parameters:
	// - name: userId
	//   in: query
	//   required: true
	// - name: postId
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: bookmark state or bookmarks

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if postID := r.URL.Query().Get("postId"); postID != "" {
		bookmarked, err := s.s.HasBookmarked(r.Context(), userID, postID)
		if err != nil {
			writeInternalErrorf(r.Context(), w, "failed to check bookmark: %s", err.Error())
			return
		}

		writeOK(w, http.StatusOK, struct {
			Bookmarked bool `json:"bookmarked"`
		}{Bookmarked: bookmarked})
		return
	}

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookmarks, err := s.s.GetUserBookmarks(r.Context(), userID, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list bookmarks: %s", err.Error())
		return
	}

	out := make([]*Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = toAPIBookmark(b)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createBookmark(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /bookmarks Bookmarks CreateBookmark
	//
	// Bookmark the post. Bookmarking twice returns the existing bookmark.
	//
	// ---
	// responses:
	//   '201':
	//     description: bookmark

	var req struct {
		UserID string `json:"userId"`
		PostID string `json:"postId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.UserID == "" || req.PostID == "" {
		writeError(w, http.StatusBadRequest, "userId and postId are required")
		return
	}

	bookmark, err := s.s.CreateBookmark(r.Context(), req.UserID, req.PostID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to create bookmark: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIBookmark(bookmark))
}

func (s server) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /bookmarks Bookmarks DeleteBookmark
	//
	// Remove the bookmark.
	//
	// ---
	// responses:
	//   '204':
	//     description: removed

	userID, postID := r.URL.Query().Get("userId"), r.URL.Query().Get("postId")
	if userID == "" || postID == "" {
		writeError(w, http.StatusBadRequest, "userId and postId are required")
		return
	}

	if err := s.s.DeleteBookmark(r.Context(), userID, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bookmark not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to delete bookmark: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
