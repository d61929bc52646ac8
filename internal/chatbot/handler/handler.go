package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"schemesathi/internal/chatbot"
	"schemesathi/internal/eligibility"
	dErrors "schemesathi/pkg/domain-errors"
	"schemesathi/pkg/platform/httputil"
	"schemesathi/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service defines the chat operation the handler exposes.
type Service interface {
	HandleMessage(ctx context.Context, utterance string, profile *eligibility.Profile, lang string) (chatbot.Classification, chatbot.Response)
}

// ProfileFinder loads the caller's stored profile, returning nil when none
// exists. Anonymous callers always get nil.
type ProfileFinder interface {
	Find(ctx context.Context, userID string) (*eligibility.Profile, error)
}

// Handler serves the chat endpoint. The endpoint works for anonymous callers;
// authenticated callers with a stored profile get personalized answers.
type Handler struct {
	logger   *slog.Logger
	chat     Service
	profiles ProfileFinder
}

// New creates a new chat Handler.
func New(chat Service, profiles ProfileFinder, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		chat:     chat,
		profiles: profiles,
	}
}

// Register mounts the chat routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/chat/message", h.handleMessage)
}

// MessageRequest is one inbound chat utterance.
type MessageRequest struct {
	Message string `json:"message"`
}

func (r *MessageRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "message is required")
	}
	return nil
}

// MessageResponse is the assembled reply.
type MessageResponse struct {
	Category     chatbot.Category    `json:"category"`
	SchemeID     string              `json:"scheme_id,omitempty"`
	Text         string              `json:"text"`
	QuickReplies []string            `json:"quick_replies"`
	Schemes      []chatbot.SchemeRef `json:"schemes,omitempty"`
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MessageRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var profile *eligibility.Profile
	if userID := requestcontext.UserID(ctx); userID != "" {
		found, err := h.profiles.Find(ctx, userID)
		if err != nil {
			// Conversation degrades to unpersonalized answers; it never fails
			// because the profile store is down.
			h.logger.WarnContext(ctx, "profile lookup failed, answering without profile",
				"request_id", requestID,
				"error", err.Error(),
			)
		} else {
			profile = found
		}
	}

	cls, resp := h.chat.HandleMessage(ctx, req.Message, profile, requestcontext.Language(ctx))

	httputil.WriteJSON(w, http.StatusOK, MessageResponse{
		Category:     cls.Category,
		SchemeID:     cls.SchemeID,
		Text:         resp.Text,
		QuickReplies: resp.QuickReplies,
		Schemes:      resp.Schemes,
	})
}
