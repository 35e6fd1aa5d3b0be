package services

import (
	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/logger"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

type ContactService interface {
	Submit(req *dto.ContactRequest) (*dto.ContactMessageDTO, error)
}

type ContactServiceImpl struct {
	contactRepo   repositories.ContactRepository
	emailProvider email.Provider
}

func NewContactService(contactRepo repositories.ContactRepository, emailProvider email.Provider) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo, emailProvider: emailProvider}
}

// Submit stores a contact form message and acknowledges the sender.
func (s *ContactServiceImpl) Submit(req *dto.ContactRequest) (*dto.ContactMessageDTO, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.emailProvider != nil {
		err := s.emailProvider.SendTemplate(
			[]string{msg.Email},
			"We received your message",
			email.TemplateContactAck,
			email.TemplateData{"Name": msg.Name},
		)
		if err != nil {
			logger.Warn("failed to send contact acknowledgement", "error", err)
		}
	}

	return &dto.ContactMessageDTO{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}, nil
}
