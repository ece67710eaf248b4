package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 5
	MaxUsernameLength = 10
	MaxNicknameLength = 10
	MinPasswordLength = 8
	MaxContentLength  = 200
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// FieldError is a validation failure tied to a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects the failures of one validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Username checks the handle rules: 5..10 chars, alphanumeric only.
func Username(username string) *FieldError {
	if len(username) < MinUsernameLength {
		return &FieldError{Field: "username", Message: fmt.Sprintf("must be at least %d characters", MinUsernameLength)}
	}
	if len(username) > MaxUsernameLength {
		return &FieldError{Field: "username", Message: fmt.Sprintf("must be at most %d characters", MaxUsernameLength)}
	}
	if !usernamePattern.MatchString(username) {
		return &FieldError{Field: "username", Message: "must contain only letters and digits"}
	}

	return nil
}

func Email(email string) *FieldError {
	if email == "" {
		return &FieldError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &FieldError{Field: "email", Message: "is not a valid email address"}
	}

	return nil
}

func Nickname(nickname string) *FieldError {
	if nickname == "" {
		return &FieldError{Field: "nickname", Message: "is required"}
	}
	if utf8.RuneCountInString(nickname) > MaxNicknameLength {
		return &FieldError{Field: "nickname", Message: fmt.Sprintf("must be at most %d characters", MaxNicknameLength)}
	}

	return nil
}

func Password(password string) *FieldError {
	if len(password) < MinPasswordLength {
		return &FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
	}

	return nil
}

// TweetContent checks the tweet body bounds: 1..200 characters.
func TweetContent(content string) *FieldError {
	if content == "" {
		return &FieldError{Field: "content", Message: "is required"}
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return &FieldError{Field: "content", Message: fmt.Sprintf("must be at most %d characters", MaxContentLength)}
	}

	return nil
}

// Registration runs all sign-up field checks and returns every failure.
func Registration(username, email, nickname, password string) Errors {
	var errs Errors
	if fe := Username(username); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := Email(email); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := Nickname(nickname); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := Password(password); fe != nil {
		errs = append(errs, *fe)
	}

	return errs
}
