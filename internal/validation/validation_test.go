package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	return Candidate{
		Name:            "Jo",
		Email:           "jo@x.com",
		Company:         "Acme",
		Password:        "abc123!",
		ConfirmPassword: "abc123!",
	}
}

func TestValidateAcceptsValidCandidate(t *testing.T) {
	require.NoError(t, Validate(validCandidate()))
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Candidate)
		wantCode string
	}{
		{"name with digit", func(c *Candidate) { c.Name = "J0e" }, "name_format"},
		{"name too short", func(c *Candidate) { c.Name = "J" }, "name_length"},
		{"name too long", func(c *Candidate) { c.Name = longString('a', 101) }, "name_length"},
		{"email without domain dot", func(c *Candidate) { c.Email = "jo@x" }, "email_format"},
		{"email with spaces", func(c *Candidate) { c.Email = "jo @x.com" }, "email_format"},
		{"email too long", func(c *Candidate) { c.Email = longString('a', 250) + "@x.com" }, "email_length"},
		{"company too long", func(c *Candidate) { c.Company = longString('a', 101) }, "company_length"},
		{"password too short", func(c *Candidate) { c.Password = "a1!"; c.ConfirmPassword = "a1!" }, "password_weak"},
		{"password without digit", func(c *Candidate) { c.Password = "abcdef!"; c.ConfirmPassword = "abcdef!" }, "password_weak"},
		{"password without symbol", func(c *Candidate) { c.Password = "abc1234"; c.ConfirmPassword = "abc1234" }, "password_weak"},
		{"password without letter", func(c *Candidate) { c.Password = "123456!"; c.ConfirmPassword = "123456!" }, "password_weak"},
		{"passwords differ", func(c *Candidate) { c.ConfirmPassword = "abc124!" }, "password_mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			err := Validate(c)
			require.Error(t, err)

			var verr *Error
			require.True(t, errors.As(err, &verr))

			codes := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				codes[i] = f.Code
			}
			assert.Contains(t, codes, tt.wantCode)
		})
	}
}

func TestValidateAccumulatesAllFailures(t *testing.T) {
	c := Candidate{
		Name:            "J0e!",
		Email:           "not-an-email",
		Company:         longString('a', 200),
		Password:        "short",
		ConfirmPassword: "different",
	}

	err := Validate(c)
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Fields), 5)
	assert.Contains(t, verr.Error(), "Passwords do not match")
}

func TestValidateIsPure(t *testing.T) {
	c := validCandidate()
	c.Name = "J0e"

	first := Validate(c)
	second := Validate(c)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
	require.NoError(t, Validate(validCandidate()))
}

func longString(ch byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
