package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contactSucceeded  = "Thank you for your message! I'll get back to you soon."
	contactIncomplete = "Please fill in all fields."
)

type contactForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// Complete reports whether every field has something other than whitespace.
func (f contactForm) Complete() bool {
	for _, v := range []string{f.Name, f.Email, f.Message} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type contactResult struct {
	OK      bool
	Message string
}

// submitContact only acknowledges the message; it is neither sent nor stored.
func submitContact(f contactForm) contactResult {
	if !f.Complete() {
		return contactResult{Message: contactIncomplete}
	}
	return contactResult{OK: true, Message: contactSucceeded}
}

// handleContact handles POST /contact. HTMX requests get the form fragment
// with the result, plain form posts get the whole contact page back. Either
// way the fields are kept on error and cleared on success.
func (s *server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Debug("contact form binding failed", "error", err)
	}

	result := submitContact(form)
	slog.Info("contact form submitted", "complete", result.OK, "request_id", c.GetString(requestIDKey))

	if result.OK {
		form = contactForm{}
	}
	c.Header("Vary", "HX-Request")

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "contact-form", pageData{Form: form, Result: &result})
		return
	}

	data := s.render.page(PageContact)
	data.Form = form
	data.Result = &result
	status := http.StatusOK
	if !result.OK {
		status = http.StatusUnprocessableEntity
	}
	c.HTML(status, "page.html", data)
}
