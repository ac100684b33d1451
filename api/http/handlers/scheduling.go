package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akunal1/smart-resume-backend/api/http/presenter"
	"github.com/akunal1/smart-resume-backend/pkg/scheduling"
	"github.com/akunal1/smart-resume-backend/pkg/validation"
)

// SchedulingHandler serves the email, meeting and contact forms.
type SchedulingHandler struct{ svc scheduling.UseCase }

func NewSchedulingHandler(svc scheduling.UseCase) *SchedulingHandler {
	return &SchedulingHandler{svc: svc}
}

// Email sends the conversation summary to the visitor and the owner.
// @Summary  Email conversation summary
// @Tags     scheduling
// @Accept   json
// @Produce  json
// @Param    input body scheduling.EmailRequest true "Summary email"
// @Success  200 {object} scheduling.Result
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /email [post]
func (h *SchedulingHandler) Email(c *fiber.Ctx) error {
	if err := validation.Email.Validate(c.Body()); err != nil {
		return presenter.Fail(c, err)
	}
	var req scheduling.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	res, err := h.svc.SendSummary(c.Context(), req)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Meeting books a meeting and mails the invitation to every attendee.
// @Summary  Schedule meeting
// @Tags     scheduling
// @Accept   json
// @Produce  json
// @Param    input body scheduling.MeetingRequest true "Meeting request"
// @Success  200 {object} scheduling.Result
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /meetings [post]
func (h *SchedulingHandler) Meeting(c *fiber.Ctx) error {
	if err := validation.Meeting.Validate(c.Body()); err != nil {
		return presenter.Fail(c, err)
	}
	var req scheduling.MeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	res, err := h.svc.ScheduleMeeting(c.Context(), req)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Contact forwards a portfolio contact form to the owner.
// @Summary  Portfolio contact form
// @Tags     scheduling
// @Accept   json
// @Produce  json
// @Param    input body scheduling.ContactRequest true "Contact form"
// @Success  200 {object} scheduling.Result
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /contact [post]
func (h *SchedulingHandler) Contact(c *fiber.Ctx) error {
	if err := validation.Contact.Validate(c.Body()); err != nil {
		return presenter.Fail(c, err)
	}
	var req scheduling.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	return presenter.JSON(c, http.StatusOK, h.svc.Contact(c.Context(), req))
}
