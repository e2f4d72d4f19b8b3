package errors

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

func (signupPayload) ValidationMessage(field, tag, _ string) (string, bool) {
	if field == "email" {
		return "Please enter a valid email address", true
	}
	return "", false
}

func TestHTTPStatusCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"conflict":    {NewConflictError("dup", nil), StatusConflict},
		"not found":   {NewNotFoundError("missing", nil), StatusNotFound},
		"invalid":     {NewInvalidRequestError("bad", nil), StatusBadRequest},
		"database":    {NewDatabaseError("db", nil), StatusInternalServerError},
		"unavailable": {NewUnavailableError("off", nil), StatusServiceUnavailable},
		"upstream":    {NewUpstreamError("mailing list", nil), StatusBadGateway},
		"internal":    {NewInternalServerError("oops", nil), StatusInternalServerError},
		"wrapped":     {fmt.Errorf("outer: %w", NewConflictError("dup", nil)), StatusConflict},
		"plain":       {fmt.Errorf("boom"), StatusInternalServerError},
		"nil":         {nil, StatusInternalServerError},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(tc.err))
		})
	}
}

func TestGetHumanReadableMessage_HidesInternalErrors(t *testing.T) {
	assert.Equal(t, "Email already exists in waitlist", GetHumanReadableMessage(NewConflictError("Email already exists in waitlist", nil)))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(fmt.Errorf("pq: connection refused")))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(NewDatabaseError("", fmt.Errorf("pq: boom"))))
	assert.Equal(t, "An unexpected error occurred", GetHumanReadableMessage(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("UNIQUE constraint failed: waitlist_entries.email")))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.True(t, IsDuplicateKeyError(NewConflictError("dup", nil)))
	assert.False(t, IsDuplicateKeyError(fmt.Errorf("connection reset")))
	assert.False(t, IsDuplicateKeyError(nil))
}

func TestFormatValidationErrors_UsesMessengerAndJSONNames(t *testing.T) {
	payload := signupPayload{Email: "nope", Name: "A"}
	err := validator.New().Struct(payload)
	require.Error(t, err)

	got := FormatValidationErrors(err, &payload)
	require.Len(t, got, 2)

	byField := map[string]string{}
	for _, e := range got {
		byField[e.Field] = e.Message
	}

	assert.Equal(t, "Please enter a valid email address", byField["email"])
	assert.Equal(t, "Must be at least 2 characters", byField["name"])
}

func TestFormatValidationErrors_SyntaxErrorYieldsEmptyList(t *testing.T) {
	var target map[string]any
	err := json.Unmarshal([]byte("{not json"), &target)
	require.Error(t, err)

	got := FormatValidationErrors(err, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFormatValidationErrors_TypeMismatch(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}
	err := json.Unmarshal([]byte(`{"name": 42}`), &target)
	require.Error(t, err)

	got := FormatValidationErrors(err, &target)
	require.Len(t, got, 1)
	assert.Equal(t, "name", got[0].Field)
	assert.Contains(t, got[0].Message, "Invalid type for field name")
}

func TestFormatValidationErrors_WrongBodyShapeYieldsEmptyList(t *testing.T) {
	var target signupPayload
	err := json.Unmarshal([]byte(`[]`), &target)
	require.Error(t, err)

	got := FormatValidationErrors(err, &target)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
