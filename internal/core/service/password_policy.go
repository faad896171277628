package service

import (
	"errors"
	"unicode"
)

// DefaultPasswordPolicy is the built-in strength check: a configurable
// minimum length plus at least one letter and one digit. It satisfies
// ports.PasswordPolicy; deployments wanting different rules swap the
// implementation.
type DefaultPasswordPolicy struct {
	MinLength int
}

func NewDefaultPasswordPolicy(minLength int) *DefaultPasswordPolicy {
	if minLength <= 0 {
		minLength = 8
	}
	return &DefaultPasswordPolicy{MinLength: minLength}
}

func (p *DefaultPasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return errors.New("password is too short")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}
