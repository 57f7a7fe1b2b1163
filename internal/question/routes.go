package question

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Get("/questions", h.ListQuestions)
	r.Post("/question/add", h.AddQuestion)
	r.Delete("/questions/{id}", h.DeleteQuestion)
}
