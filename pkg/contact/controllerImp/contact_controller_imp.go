package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/contact/repository"
	"krishi/pkg/logger"
	"krishi/pkg/validation"
)

type ContactCtrl struct {
	repo repository.ContactRepository
	log  *logger.Logger
}

func New(repo repository.ContactRepository, log *logger.Logger) *ContactCtrl {
	return &ContactCtrl{repo: repo, log: log.With("controller", "contact")}
}

type createReq struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func (h *ContactCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if err := c.Validate(req); err != nil {
		return validation.Error(c, err)
	}

	m := &entities.Contact{Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.log.Info("contact message received", "contact_id", m.ContactID, "email", m.Email)
	return c.JSON(http.StatusCreated, map[string]any{
		"contact_id": m.ContactID,
		"message":    "Thank you for your message! We'll get back to you soon.",
	})
}
