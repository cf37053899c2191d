// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/krishisetu/kisan-yojana/app/dto"
	"github.com/krishisetu/kisan-yojana/models"
)

// ClientMetadata holds client-related information for request logging
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ToSchemeDTO converts a scheme model into its full API representation
func ToSchemeDTO(s models.Scheme) dto.SchemeDTO {
	return dto.SchemeDTO{
		ID:                 s.UUID.String(),
		Name:               s.Name,
		ShortDescription:   s.ShortDescription,
		Description:        s.Description,
		OfficialLink:       s.OfficialLink,
		Category:           s.Category,
		Ministry:           s.Ministry,
		Eligibility:        s.Eligibility,
		Benefits:           s.Benefits,
		ApplicationProcess: s.ApplicationProcess,
		Documents:          s.Documents,
		LaunchDate:         formatTimePtr(s.LaunchDate),
		ImageURL:           s.ImageURL,
		State:              s.State,
		IsActive:           s.IsActive,
		ViewCount:          s.ViewCount,
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
	}
}

// ToSchemeListItemDTO converts a scheme model into the trimmed listing shape;
// description, application process and documents stay out of list views.
func ToSchemeListItemDTO(s models.Scheme) dto.SchemeListItemDTO {
	return dto.SchemeListItemDTO{
		ID:               s.UUID.String(),
		Name:             s.Name,
		ShortDescription: s.ShortDescription,
		OfficialLink:     s.OfficialLink,
		Category:         s.Category,
		Ministry:         s.Ministry,
		Eligibility:      s.Eligibility,
		Benefits:         s.Benefits,
		LaunchDate:       formatTimePtr(s.LaunchDate),
		ImageURL:         s.ImageURL,
		State:            s.State,
		IsActive:         s.IsActive,
		ViewCount:        s.ViewCount,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

// ToAdminDTO converts an admin model into its public representation
func ToAdminDTO(a models.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:        a.ID,
		UUID:      a.UUID.String(),
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		IsActive:  a.IsActive,
		LastLogin: formatTimePtr(a.LastLoginAt),
		CreatedAt: formatTime(a.CreatedAt),
	}
}
