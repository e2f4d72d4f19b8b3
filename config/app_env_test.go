package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAutoMigrateAllowed_AllowsDevLikeEnvs(t *testing.T) {
	for _, env := range []string{"", "dev", "development", "local", "test", "testing", "DEV", "  Local  "} {
		t.Run(env, func(t *testing.T) {
			assert.NoError(t, ValidateAutoMigrateAllowed(env))
		})
	}
}

func TestValidateAutoMigrateAllowed_RejectsProdAndOtherEnvs(t *testing.T) {
	for _, env := range []string{"prod", "production", "staging", "preprod", " Production ", "qa"} {
		t.Run(env, func(t *testing.T) {
			assert.Error(t, ValidateAutoMigrateAllowed(env))
		})
	}
}

func TestGetEnvPositiveInt(t *testing.T) {
	t.Setenv("LIXI_TEST_INT", "25")
	assert.Equal(t, 25, getEnvPositiveInt("LIXI_TEST_INT", 100))

	t.Setenv("LIXI_TEST_INT", "-1")
	assert.Equal(t, 100, getEnvPositiveInt("LIXI_TEST_INT", 100))

	t.Setenv("LIXI_TEST_INT", "many")
	assert.Equal(t, 100, getEnvPositiveInt("LIXI_TEST_INT", 100))
}
