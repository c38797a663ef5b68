// Package server Hive
//
// The Hive is the BaseBuzz feed and engagement service (posts, likes, follows,
// bookmarks, notifications, hashtags).
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/base-buzz/hive/internal/middleware"
	"github.com/base-buzz/hive/internal/service"
)

const maxBodySize = 64 * 1024

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", mm.Cached(time.Minute, srv.listTrendingPosts))
			r.Post("/", srv.createPost)
			r.Get("/feed", srv.getFeed)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", srv.getPost)
				r.Put("/", srv.updatePost)
				r.Delete("/", srv.deletePost)
				r.Get("/replies", srv.listPostReplies)
				r.Post("/replies", srv.createReply)
				r.Post("/repost", srv.createRepost)
			})
		})

		r.Get("/likes", srv.getLike)
		r.Post("/likes", srv.createLike)
		r.Delete("/likes", srv.deleteLike)

		r.Get("/follows", srv.getFollow)
		r.Post("/follows", srv.createFollow)
		r.Delete("/follows", srv.deleteFollow)

		r.Get("/bookmarks", srv.getBookmarks)
		r.Post("/bookmarks", srv.createBookmark)
		r.Delete("/bookmarks", srv.deleteBookmark)

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", srv.getNotifications)
			r.Post("/", srv.createNotification)
			r.Put("/", srv.markAllNotificationsRead)
			r.Put("/{id}", srv.markNotificationRead)
		})

		r.Get("/hashtags/trending", mm.Cached(10*time.Minute, srv.listTrendingHashtags))
		r.Get("/hashtags/{tag}", srv.listPostsByHashtag)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", srv.listUsers)
			r.Post("/", srv.createUser)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", srv.getUser)
				r.Get("/followers", srv.listFollowers)
				r.Get("/following", srv.listFollowing)
				r.Get("/posts", srv.listUserPosts)
				r.Get("/stats", srv.getUserStats)
				r.Get("/metrics", srv.getUserMetrics)
			})
		})

		r.Get("/search", srv.search)
		r.Get("/metrics", mm.Cached(time.Minute, srv.getPlatformMetrics))
		r.Get("/price", srv.getTokenPrice)
	})
}
