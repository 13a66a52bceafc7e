package validation

import (
	"regexp"
	"strings"
)

// FieldError identifies a failed rule on one field. Code is stable and
// machine-routable; Message is the user-facing text.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error aggregates every failed rule for a candidate record.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}

// Candidate is the raw submitted form data, before any persistence decision.
type Candidate struct {
	Name            string
	Email           string
	Company         string
	Password        string
	ConfirmPassword string
}

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

type rule struct {
	field   string
	code    string
	message string
	ok      func(c Candidate) bool
}

// The rule table is the single server-side source of the validation contract;
// the browser client carries a hand-ported copy of the same table.
var rules = []rule{
	{"name", "name_format", "Name can only contain letters, spaces, apostrophes, and hyphens",
		func(c Candidate) bool { return nameRe.MatchString(c.Name) }},
	{"name", "name_length", "Name must be between 2 and 100 characters",
		func(c Candidate) bool { return len(c.Name) >= 2 && len(c.Name) <= 100 }},
	{"email", "email_format", "Please provide a valid email address",
		func(c Candidate) bool { return emailRe.MatchString(c.Email) }},
	{"email", "email_length", "Email address is too long",
		func(c Candidate) bool { return len(c.Email) <= 255 }},
	{"company", "company_length", "Company name must be between 1 and 100 characters",
		func(c Candidate) bool { return len(c.Company) >= 1 && len(c.Company) <= 100 }},
	{"password", "password_weak", "Password must be at least 6 characters and include letters, numbers, and symbols",
		func(c Candidate) bool {
			return len(c.Password) >= 6 &&
				letterRe.MatchString(c.Password) &&
				digitRe.MatchString(c.Password) &&
				symbolRe.MatchString(c.Password)
		}},
	{"confirmPassword", "password_mismatch", "Passwords do not match",
		func(c Candidate) bool { return c.Password == c.ConfirmPassword }},
}

// Validate evaluates every rule against the candidate and returns nil when all
// pass, or an *Error listing each failure in table order. Rules never
// short-circuit each other.
func Validate(c Candidate) error {
	var fields []FieldError
	for _, r := range rules {
		if !r.ok(c) {
			fields = append(fields, FieldError{Field: r.field, Code: r.code, Message: r.message})
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
