package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"priyasi-storefront/internal/logger"
	"priyasi-storefront/internal/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

// Handler serves the three form endpoints under /functions/.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/functions/send-contact-email", handle(h.svc.SendContact))
	mux.HandleFunc("/functions/send-newsletter-email", handle(h.svc.Subscribe))
	mux.HandleFunc("/functions/send-feedback-email", handle(h.svc.SendFeedback))
}

func handle[T any](fn func(context.Context, T) (*Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusNoContent)
			return
		case http.MethodPost:
		default:
			utils.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req T
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		res, err := fn(r.Context(), req)
		if err != nil {
			if errors.Is(err, ErrInvalidRequest) {
				utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			logger.FromCtx(r.Context()).Error("email request failed",
				zap.String("layer", "handler"),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			utils.WriteJSONError(w, "failed to send email", http.StatusInternalServerError)
			return
		}

		utils.WriteJSON(w, http.StatusOK, res)
	}
}
