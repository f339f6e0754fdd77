package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"basketlens/internal/config"
	"basketlens/internal/faq"
	"basketlens/internal/metrics"
	"basketlens/internal/models"
	"basketlens/internal/validation"
)

// NoMatchReply is shown when no FAQ question is close enough.
const NoMatchReply = "Sorry, I did not understand this question"

// ChatHandler serves the FAQ chatbot page.
type ChatHandler struct {
	matcher *faq.Matcher
	cfg     *config.Config
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(matcher *faq.Matcher, cfg *config.Config) *ChatHandler {
	return &ChatHandler{matcher: matcher, cfg: cfg}
}

// Page renders the empty chatbot form.
func (h *ChatHandler) Page(c fiber.Ctx) error {
	return c.Render("chat", h.view(c, fiber.Map{}))
}

// Ask answers the posted question with the closest FAQ entry.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	query := c.FormValue("query")
	if valid, msg := validation.ValidateQuery(query); !valid {
		return c.Status(fiber.StatusBadRequest).Render("chat", h.view(c, fiber.Map{
			"Query": query,
			"Error": msg,
		}))
	}

	match, err := h.matcher.Match(query)
	if errors.Is(err, faq.ErrNoMatch) {
		metrics.RecordChatLookup("", models.OutcomeNoMatch)
		return c.Render("chat", h.view(c, fiber.Map{
			"Query":  query,
			"Answer": NoMatchReply,
		}))
	}
	if err != nil {
		return err
	}

	metrics.RecordChatLookup(match.Question, models.OutcomeMatched)
	return c.Render("chat", h.view(c, fiber.Map{
		"Query":   query,
		"Answer":  match.Answer,
		"Matched": match.Question,
		"Score":   match.Score,
	}))
}

func (h *ChatHandler) view(c fiber.Ctx, data fiber.Map) fiber.Map {
	data["Title"] = "Chatbot"
	data["User"] = currentUser(c)
	data["Questions"] = h.matcher.Corpus().Len()
	return MergeBranding(data, h.cfg)
}
