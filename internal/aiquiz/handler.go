package aiquiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/h2owise/internal/config"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid AI generate body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.service.GenerateQuestion(r.Context(), req)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, question)
}
