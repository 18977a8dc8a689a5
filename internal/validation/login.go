package validation

import (
	"strings"
	"unicode/utf8"
)

// LoginPayload is the raw decoded body of a login request.
type LoginPayload struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// LoginInput is a validated credential pair. Username is trimmed;
// the password is taken verbatim since leading or trailing whitespace
// may be part of the secret.
type LoginInput struct {
	Username string
	Password string
}

// ValidateLogin checks a login payload against the credential shape.
func ValidateLogin(p *LoginPayload) (*LoginInput, []FieldError) {
	var errs errorList

	username := ""
	if p.Username == nil {
		errs.add("username", "Required")
	} else {
		username = strings.TrimSpace(*p.Username)
		if n := utf8.RuneCountInString(username); n < 3 {
			errs.add("username", "Username must be at least 3 characters")
		} else if n > 50 {
			errs.add("username", "Username must not exceed 50 characters")
		}
	}

	password := ""
	if p.Password == nil {
		errs.add("password", "Required")
	} else {
		password = *p.Password
		if n := utf8.RuneCountInString(password); n < 8 {
			errs.add("password", "Password must be at least 8 characters")
		} else if n > 100 {
			errs.add("password", "Password must not exceed 100 characters")
		}
	}

	if len(errs.errs) > 0 {
		return nil, errs.errs
	}
	return &LoginInput{Username: username, Password: password}, nil
}
