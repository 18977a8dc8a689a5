package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	input, errs := ValidateLogin(&LoginPayload{
		Username: strPtr("  admin  "),
		Password: strPtr("  secretpass  "),
	})
	require.Empty(t, errs)
	assert.Equal(t, "admin", input.Username, "username should be trimmed")
	assert.Equal(t, "  secretpass  ", input.Password, "password must not be trimmed")
}

func TestValidateLoginFailures(t *testing.T) {
	cases := []struct {
		name    string
		payload LoginPayload
		field   string
		message string
	}{
		{"missing username", LoginPayload{Password: strPtr("secretpass")}, "username", "Required"},
		{"short username", LoginPayload{Username: strPtr("ab"), Password: strPtr("secretpass")}, "username", "Username must be at least 3 characters"},
		{"short multibyte username", LoginPayload{Username: strPtr("éé"), Password: strPtr("secretpass")}, "username", "Username must be at least 3 characters"},
		{"long username", LoginPayload{Username: strPtr(strings.Repeat("a", 51)), Password: strPtr("secretpass")}, "username", "Username must not exceed 50 characters"},
		{"missing password", LoginPayload{Username: strPtr("admin")}, "password", "Required"},
		{"short password", LoginPayload{Username: strPtr("admin"), Password: strPtr("short")}, "password", "Password must be at least 8 characters"},
		{"long password", LoginPayload{Username: strPtr("admin"), Password: strPtr(strings.Repeat("p", 101))}, "password", "Password must not exceed 100 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateLogin(&tc.payload)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestValidateLoginBothMissing(t *testing.T) {
	_, errs := ValidateLogin(&LoginPayload{})
	require.Len(t, errs, 2)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)
}
