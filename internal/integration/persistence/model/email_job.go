package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-genius/backend/internal/domain/entity"
)

// EmailJobModel is one element of the email queue document.
type EmailJobModel struct {
	ID             uuid.UUID              `json:"id"`
	ReminderKey    string                 `json:"reminderKey"`
	RecipientEmail string                 `json:"recipientEmail"`
	RecipientName  string                 `json:"recipientName,omitempty"`
	Subject        string                 `json:"subject"`
	TemplateData   map[string]interface{} `json:"templateData,omitempty"`
	Status         string                 `json:"status"`
	Attempts       int                    `json:"attempts"`
	MaxAttempts    int                    `json:"maxAttempts"`
	LastError      string                 `json:"lastError,omitempty"`
	ResendID       string                 `json:"resendId,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	ScheduledAt    time.Time              `json:"scheduledAt"`
	ProcessedAt    *time.Time             `json:"processedAt,omitempty"`
}

// ToEntity converts an EmailJobModel to a domain EmailJob entity.
func (m *EmailJobModel) ToEntity() *entity.EmailJob {
	data := m.TemplateData
	if data == nil {
		data = make(map[string]interface{})
	}

	return &entity.EmailJob{
		ID:             m.ID,
		ReminderKey:    m.ReminderKey,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailJobFromEntity creates an EmailJobModel from a domain EmailJob entity.
func EmailJobFromEntity(job *entity.EmailJob) *EmailJobModel {
	return &EmailJobModel{
		ID:             job.ID,
		ReminderKey:    job.ReminderKey,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   job.TemplateData,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
