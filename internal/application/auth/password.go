package auth

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/YudheerRM/bidding-insights/internal/domain"
)

// BcryptCost work factor for every stored password.
const BcryptCost = 12

// MinPasswordLength minimum accepted password length.
const MinPasswordLength = 8

// MaxPasswordLength bcrypt only reads the first 72 bytes and refuses longer input.
const MaxPasswordLength = 72

var errPasswordTooLong = domain.Invalid("WEAK_PASSWORD", "password must be at most 72 bytes")

// CheckPasswordLength rejects passwords bcrypt cannot hash.
func CheckPasswordLength(p string) error {
	if len(p) > MaxPasswordLength {
		return errPasswordTooLong
	}
	return nil
}

// HashPassword bcrypt hash at BcryptCost.
func HashPassword(plain string) (string, error) {
	if err := CheckPasswordLength(plain); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// CheckPassword false on mismatch or an empty hash.
func CheckPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePassword 8 to 72 bytes with an uppercase letter, a lowercase letter and a digit.
func ValidatePassword(p string) error {
	if len(p) < MinPasswordLength {
		return domain.Invalid("WEAK_PASSWORD", "password must be at least 8 characters")
	}
	if err := CheckPasswordLength(p); err != nil {
		return err
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return domain.Invalid("WEAK_PASSWORD", "password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	return nil
}

// ValidateEmail accepts a bare address only ("Name <a@b>" is rejected).
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return domain.Invalid("INVALID_EMAIL", "invalid email address")
	}
	return nil
}
