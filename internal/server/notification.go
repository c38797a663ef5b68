package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

func (s server) getNotifications(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /notifications Notifications GetNotifications
	//
	// With unreadCount=true returns the unread counter, otherwise returns the
	// user's notifications with actor and post, newest first.
	//
	// ---
	// parameters:
	// - name: userId
	//   in: query
	//   required: true
	// - name: unreadCount
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: notifications or unread counter

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if r.URL.Query().Get("unreadCount") == "true" {
		count, err := s.s.GetUnreadNotificationCount(r.Context(), userID)
		if err != nil {
			writeInternalErrorf(r.Context(), w, "failed to count unread notifications: %s", err.Error())
			return
		}

		writeOK(w, http.StatusOK, struct {
			Unread uint64 `json:"unread"`
		}{Unread: count})
		return
	}

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	notifications, err := s.s.GetUserNotifications(r.Context(), userID, params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list notifications: %s", err.Error())
		return
	}

	out := make([]*Notification, len(notifications))
	for i, n := range notifications {
		out[i] = toAPINotification(n)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createNotification(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /notifications Notifications CreateNotification
	//
	// Create a notification. With type=system and userIds creates one
	// notification per recipient sharing the message; the batch is not atomic.
	//
	// ---
	// responses:
	//   '201':
	//     description: created

	var req struct {
		UserID  string   `json:"userId"`
		UserIDs []string `json:"userIds"`
		ActorID *string  `json:"actorId"`
		Type    string   `json:"type"`
		PostID  *string  `json:"postId"`
		Message string   `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	t := entities.NotificationType(req.Type)

	if t == entities.SystemNotification && len(req.UserIDs) > 0 {
		created, err := s.s.BroadcastSystemNotification(r.Context(), req.UserIDs, req.Message)
		if err != nil {
			if errors.Is(err, service.ErrInvalidRequest) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternalErrorf(r.Context(), w, "failed to broadcast notification, %d created: %s", created, err.Error())
			return
		}

		writeOK(w, http.StatusCreated, struct {
			Created int `json:"created"`
		}{Created: created})
		return
	}

	notification, err := s.s.CreateNotification(r.Context(), service.CreateNotificationParams{
		UserID:  req.UserID,
		ActorID: req.ActorID,
		Type:    t,
		PostID:  req.PostID,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "recipient not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to create notification: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPINotification(notification))
}

func (s server) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /notifications Notifications MarkAllNotificationsRead
	//
	// Mark all of the user's unread notifications as read.
	//
	// ---
	// responses:
	//   '204':
	//     description: marked

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := s.s.MarkAllNotificationsRead(r.Context(), userID); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to mark notifications read: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /notifications/{id} Notifications MarkNotificationRead
	//
	// Mark the notification as read. Marking an already-read one succeeds.
	//
	// ---
	// responses:
	//   '204':
	//     description: marked

	if err := s.s.MarkNotificationRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "notification not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to mark notification read: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
