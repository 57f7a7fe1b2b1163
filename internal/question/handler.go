package question

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/h2owise/internal/config"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListQuestions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read request body")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			config.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto, err := DecodeCreateQuestion(body)
	if err != nil {
		log.WithError(err).Warn("Rejected question payload")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.service.AddQuestion(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, config.ErrStore):
		config.Error(w, http.StatusBadGateway, config.ErrStore.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
