package score

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Post("/submit", h.Submit)
	r.Get("/leaderboard", h.Leaderboard)
	r.Get("/badges/{username}", h.Badges)
}
