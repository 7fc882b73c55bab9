// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/nouvelayiti/nouvel-go/internal/middleware"
)

// Routes mounts the full API surface. Public write endpoints sit behind
// the rate limiter; everything under /admin except login and logout sits
// behind the session guard.
func (h *Handler) Routes(limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.Status)

	// Public reads
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{slug}", h.GetCategoryBySlug)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", h.ListArticles)
		r.Get("/featured", h.ListFeaturedArticles)
		r.Get("/popular", h.ListPopularArticles)
		r.Get("/category/{categoryID}", h.ListArticlesByCategory)
		r.Get("/related/{articleID}", h.ListRelatedArticles)
		r.Get("/search", h.SearchArticles)
		r.Get("/{slug}", h.GetArticleBySlug)
	})

	r.Get("/media", h.ListMedia)

	r.Get("/polls/active", h.ListActivePolls)
	r.Get("/polls/{id}/results", h.GetPollResults)

	// Public writes, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware())
		r.Post("/polls/{id}/vote", h.Vote)
		r.Post("/subscribe", h.Subscribe)
		r.Post("/contact", h.Contact)
	})

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.With(limiter.Middleware()).Post("/login", h.Login)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(h.sessions, h.store))

			r.Get("/check-auth", h.CheckAuth)
			r.Get("/dashboard", h.Dashboard)
			r.Get("/events", h.ListEvents)
			r.Get("/subscribers", h.ListSubscribers)
			r.Get("/messages", h.ListContactMessages)
			r.Post("/messages/{id}/read", h.MarkMessageRead)

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", h.ListArticles)
				r.Post("/", h.CreateArticle)
				r.Get("/{id}", h.GetArticle)
				r.Put("/{id}", h.UpdateArticle)
				r.Delete("/{id}", h.DeleteArticle)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ListCategories)
				r.Post("/", h.CreateCategory)
				r.Get("/{id}", h.GetCategory)
				r.Put("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", h.ListMedia)
				r.Post("/", h.CreateMedia)
				r.Get("/{id}", h.GetMedia)
				r.Put("/{id}", h.UpdateMedia)
				r.Delete("/{id}", h.DeleteMedia)
			})

			r.Route("/polls", func(r chi.Router) {
				r.Get("/", h.ListPolls)
				r.Post("/", h.CreatePoll)
				r.Get("/{id}", h.GetPoll)
				r.Put("/{id}", h.UpdatePoll)
				r.Delete("/{id}", h.DeletePoll)
			})
		})
	})

	return r
}
