package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

func (s server) getLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /likes Engagement GetLike
	//
	// Check whether the user has liked the post.
	//
	// ---
	// parameters:
	// - name: userId
	//   in: query
	//   required: true
	// - name: postId
	//   in: query
	//   required: true
	// responses:
	//   '200':
	//     description: like state

	userID, postID := r.URL.Query().Get("userId"), r.URL.Query().Get("postId")
	if userID == "" || postID == "" {
		writeError(w, http.StatusBadRequest, "userId and postId are required")
		return
	}

	liked, err := s.s.HasLiked(r.Context(), userID, postID)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to check like: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct {
		Liked bool `json:"liked"`
	}{Liked: liked})
}

func (s server) createLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /likes Engagement CreateLike
	//
	// Like the post. Liking twice is a no-op.
	//
	// ---
	// responses:
	//   '204':
	//     description: liked

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

	if err := s.s.LikePost(r.Context(), req.UserID, req.PostID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to like post: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /likes Engagement DeleteLike
	//
	// Unlike the post.
	//
	// ---
	// responses:
	//   '204':
	//     description: unliked

	userID, postID := r.URL.Query().Get("userId"), r.URL.Query().Get("postId")
	if userID == "" || postID == "" {
		writeError(w, http.StatusBadRequest, "userId and postId are required")
		return
	}

	if err := s.s.UnlikePost(r.Context(), userID, postID); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to unlike post: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /follows Engagement GetFollow
	//
	// Check whether follower follows following.
	//
	// ---
	// responses:
	//   '200':
	//     description: follow state

	followerID, followingID := r.URL.Query().Get("followerId"), r.URL.Query().Get("followingId")
	if followerID == "" || followingID == "" {
		writeError(w, http.StatusBadRequest, "followerId and followingId are required")
		return
	}

	following, err := s.s.IsFollowing(r.Context(), followerID, followingID)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to check follow: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct {
		Following bool `json:"following"`
	}{Following: following})
}

func (s server) createFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /follows Engagement CreateFollow
	//
	// Follow a user. Self-follow is rejected.
	//
	// ---
	// responses:
	//   '204':
	//     description: followed
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req struct {
		FollowerID  string `json:"followerId"`
		FollowingID string `json:"followingId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.FollowerID == "" || req.FollowingID == "" {
		writeError(w, http.StatusBadRequest, "followerId and followingId are required")
		return
	}

	if err := s.s.Follow(r.Context(), req.FollowerID, req.FollowingID); err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to follow: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteFollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /follows Engagement DeleteFollow
	//
	// Unfollow a user.
	//
	// ---
	// responses:
	//   '204':
	//     description: unfollowed

	followerID, followingID := r.URL.Query().Get("followerId"), r.URL.Query().Get("followingId")
	if followerID == "" || followingID == "" {
		writeError(w, http.StatusBadRequest, "followerId and followingId are required")
		return
	}

	if err := s.s.Unfollow(r.Context(), followerID, followingID); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to unfollow: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listFollowers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/followers Engagement ListFollowers
	//
	// Return users following the given user.
	//
	// ---
	// responses:
	//   '200':
	//     description: Users

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.s.GetUserFollowers(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list followers: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIUsers(users))
}

func (s server) listFollowing(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/following Engagement ListFollowing
	//
	// Return users the given user follows.
	//
	// ---
	// responses:
	//   '200':
	//     description: Users

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.s.GetUserFollowing(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list following: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIUsers(users))
}
