package score

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/h2owise/internal/config"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	service ScoreService
}

func NewHandler(s ScoreService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SubmitDTO
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid submission body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		log.WithError(err).Warn("Rejected submission")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Submit(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.Leaderboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, records)
}

func (h *Handler) Badges(w http.ResponseWriter, r *http.Request) {
	username, err := url.PathUnescape(chi.URLParam(r, "username"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid username")
		return
	}
	username = strings.TrimSpace(username)
	if username == "" {
		config.Error(w, http.StatusBadRequest, "username required")
		return
	}

	badges, err := h.service.Badges(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, badges)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, config.ErrStore) {
		config.Error(w, http.StatusBadGateway, config.ErrStore.Error())
		return
	}
	config.Error(w, http.StatusInternalServerError, "internal server error")
}
