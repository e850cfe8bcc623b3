package mapping

import (
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	"github.com/parkwise/parking_cash_app/internal/models"
)

func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID:   d.SessionID,
		UserID:      d.UserID,
		Token:       d.Token,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID:   m.SessionID,
		UserID:      m.UserID,
		Token:       m.Token,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
