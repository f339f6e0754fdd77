package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/faq"
	"basketlens/internal/metrics"
	"basketlens/internal/models"
	"basketlens/internal/validation"
)

// NoMatchMessage is the reply when no FAQ question is close enough.
const NoMatchMessage = "Sorry, I did not understand this question"

// ChatHandler answers FAQ questions via JSON API.
type ChatHandler struct {
	matcher *faq.Matcher
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(matcher *faq.Matcher) *ChatHandler {
	return &ChatHandler{matcher: matcher}
}

type chatRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Matched  bool    `json:"matched"`
	Question string  `json:"question,omitempty"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score,omitempty"`
}

// Ask returns the answer to the closest FAQ question. No match is a normal
// response with matched=false.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	var body chatRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if valid, msg := validation.ValidateQuery(body.Query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	match, err := h.matcher.Match(body.Query)
	if errors.Is(err, faq.ErrNoMatch) {
		metrics.RecordChatLookup("", models.OutcomeNoMatch)
		return jsonSuccess(c, chatResponse{Matched: false, Answer: NoMatchMessage})
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to answer question")
	}

	metrics.RecordChatLookup(match.Question, models.OutcomeMatched)
	return jsonSuccess(c, chatResponse{
		Matched:  true,
		Question: match.Question,
		Answer:   match.Answer,
		Score:    match.Score,
	})
}
