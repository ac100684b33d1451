package checkers

import (
	"context"
	"errors"
)

type resumeContext interface {
	Context() string
}

// ResumeChecker fails until the resume context has been rendered.
type ResumeChecker struct {
	resume resumeContext
}

func NewResumeChecker(r resumeContext) *ResumeChecker {
	return &ResumeChecker{resume: r}
}

func (c *ResumeChecker) Name() string { return "resume" }

func (c *ResumeChecker) Check(_ context.Context) error {
	if c.resume == nil || c.resume.Context() == "" {
		return errors.New("resume context not loaded")
	}
	return nil
}
