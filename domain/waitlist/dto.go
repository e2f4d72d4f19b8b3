package waitlist

import (
	"encoding/json"
	"strings"

	"github.com/lixi-remit/lixi-landing/internal/models"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
)

// Amount buckets offered by the landing page form. Other values up to 64
// characters are accepted as free text.
var MonthlyAmountBuckets = []string{"under-500", "500-1000", "1000-2000", "over-2000"}

type CreateWaitlistEntryRequest struct {
	Email         string  `json:"email" binding:"required,email,max=255"`
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	MonthlyAmount *string `json:"monthlyAmount" binding:"omitempty,max=64"`
}

// UnmarshalJSON normalises the payload before gin runs the binding validators,
// so length checks see the trimmed values.
func (r *CreateWaitlistEntryRequest) UnmarshalJSON(data []byte) error {
	type plain CreateWaitlistEntryRequest

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*r = CreateWaitlistEntryRequest(decoded)
	r.Normalize()
	return nil
}

func (r *CreateWaitlistEntryRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)

	if r.MonthlyAmount != nil {
		amount := strings.TrimSpace(*r.MonthlyAmount)
		if amount == "" {
			r.MonthlyAmount = nil
		} else {
			r.MonthlyAmount = &amount
		}
	}
}

func (r *CreateWaitlistEntryRequest) ValidationMessage(field, tag, _ string) (string, bool) {
	switch field {
	case "email":
		return "Please enter a valid email address", true
	case "name":
		if tag == "max" {
			return "Name must not exceed 255 characters", true
		}
		return "Name must be at least 2 characters long", true
	case "monthlyAmount":
		return "Monthly amount must not exceed 64 characters", true
	}
	return "", false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type JoinedEntryResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type WaitlistEntryResponse struct {
	ID            uint    `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	MonthlyAmount *string `json:"monthlyAmount"`
	CreatedAt     string  `json:"createdAt"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *CreateWaitlistEntryRequest) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Email:         req.Email,
		Name:          req.Name,
		MonthlyAmount: req.MonthlyAmount,
	}
}

func ToWaitlistEntryResponse(entry *models.WaitlistEntry) WaitlistEntryResponse {
	if entry == nil {
		return WaitlistEntryResponse{}
	}
	return WaitlistEntryResponse{
		ID:            entry.ID,
		Email:         entry.Email,
		Name:          entry.Name,
		MonthlyAmount: entry.MonthlyAmount,
		CreatedAt:     entry.CreatedAt.UTC().Format(constants.RFC3339DateTimeFormat),
	}
}

func ToJoinedEntryResponse(entry *models.WaitlistEntry) JoinedEntryResponse {
	if entry == nil {
		return JoinedEntryResponse{}
	}
	return JoinedEntryResponse{ID: entry.ID, Email: entry.Email}
}
