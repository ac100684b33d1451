package handlers

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/api/http/presenter"
	"github.com/akunal1/smart-resume-backend/pkg/assistant"
	"github.com/akunal1/smart-resume-backend/pkg/chat"
	"github.com/akunal1/smart-resume-backend/pkg/validation"
)

const downloadName = "Resume.pdf"

type AssistantHandler struct {
	svc     assistant.UseCase
	pdfPath string
	log     *zap.Logger
}

func NewAssistantHandler(svc assistant.UseCase, pdfPath string, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, pdfPath: pdfPath, log: log}
}

type askOptions struct {
	Streaming bool `json:"streaming"`
}

type askRequest struct {
	Query    string         `json:"query"`
	Mode     string         `json:"mode"`
	History  []chat.Message `json:"history"`
	UserName string         `json:"userName"`
	Options  *askOptions    `json:"options,omitempty"`
}

// Ask answers a visitor's question in the resume owner's voice.
// @Summary     Ask the assistant
// @Description Classifies the query; scripted intents are answered directly, the rest by the language model grounded on the resume.
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Param       input body askRequest true "Question with optional history"
// @Success     200 {object} assistant.Response
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	if err := validation.Ask.Validate(c.Body()); err != nil {
		return presenter.Fail(c, err)
	}
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	resp := h.svc.Ask(c.Context(), assistant.Request{
		Query:    req.Query,
		Mode:     req.Mode,
		History:  req.History,
		UserName: req.UserName,
	})
	return presenter.JSON(c, http.StatusOK, resp)
}

// Download streams the resume PDF.
// @Summary  Download resume
// @Tags     assistant
// @Produce  application/pdf
// @Success  200 {file} file
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /assistant/download [get]
func (h *AssistantHandler) Download(c *fiber.Ctx) error {
	if _, err := os.Stat(h.pdfPath); err != nil {
		h.log.Error("resume pdf unavailable", zap.String("path", h.pdfPath), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "Failed to download resume")
	}
	return c.Download(h.pdfPath, downloadName)
}
