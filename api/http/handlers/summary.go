package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akunal1/smart-resume-backend/api/http/presenter"
	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/summary"
	"github.com/akunal1/smart-resume-backend/pkg/validation"
)

type SummaryHandler struct{ svc summary.UseCase }

func NewSummaryHandler(svc summary.UseCase) *SummaryHandler { return &SummaryHandler{svc: svc} }

type summaryRequest struct {
	ChatHistory []chat.Message `json:"chatHistory"`
}

// Summarize condenses a chat into a title, summary and suggested follow-up.
// @Summary  Summarize conversation
// @Tags     ai
// @Accept   json
// @Produce  json
// @Param    input body summaryRequest true "Chat history"
// @Success  200 {object} summary.Result
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /ai/summary [post]
func (h *SummaryHandler) Summarize(c *fiber.Ctx) error {
	var req summaryRequest
	if err := validation.Summary.Validate(c.Body()); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "chatHistory is required and must be an array")
	}
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "chatHistory is required and must be an array")
	}
	return presenter.JSON(c, http.StatusOK, h.svc.Summarize(c.Context(), req.ChatHistory))
}
