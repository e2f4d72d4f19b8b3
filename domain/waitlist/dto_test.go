package waitlist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWaitlistEntryRequest_UnmarshalNormalizes(t *testing.T) {
	var req CreateWaitlistEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"  An.Nguyen@Example.COM ","name":"  An  ","monthlyAmount":"   "}`), &req))

	assert.Equal(t, "an.nguyen@example.com", req.Email)
	assert.Equal(t, "An", req.Name)
	assert.Nil(t, req.MonthlyAmount)
}

func TestCreateWaitlistEntryRequest_KeepsTrimmedAmount(t *testing.T) {
	var req CreateWaitlistEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.co","name":"An","monthlyAmount":" 1000-2000 "}`), &req))

	require.NotNil(t, req.MonthlyAmount)
	assert.Equal(t, "1000-2000", *req.MonthlyAmount)
}

func TestCreateWaitlistEntryRequest_ValidationMessage(t *testing.T) {
	req := &CreateWaitlistEntryRequest{}

	msg, ok := req.ValidationMessage("name", "min", "2")
	assert.True(t, ok)
	assert.Equal(t, "Name must be at least 2 characters long", msg)

	msg, ok = req.ValidationMessage("name", "max", "255")
	assert.True(t, ok)
	assert.Equal(t, "Name must not exceed 255 characters", msg)

	_, ok = req.ValidationMessage("unknown", "required", "")
	assert.False(t, ok)
}

func TestToWaitlistEntryResponse(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*60*60)
	entry := &models.WaitlistEntry{
		ID:            7,
		Email:         "lan@example.com",
		Name:          "Lan",
		MonthlyAmount: strPtr("under-500"),
		CreatedAt:     time.Date(2026, 2, 10, 9, 30, 0, 0, hcm),
	}

	resp := ToWaitlistEntryResponse(entry)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "2026-02-10T02:30:00Z", resp.CreatedAt)
	assert.Equal(t, "under-500", *resp.MonthlyAmount)
	assert.Equal(t, JoinedEntryResponse{ID: 7, Email: "lan@example.com"}, ToJoinedEntryResponse(entry))
	assert.Equal(t, WaitlistEntryResponse{}, ToWaitlistEntryResponse(nil))
}
