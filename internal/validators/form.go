// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field name constants used as keys of [FieldErrors].
const (
	// FieldName targets the display-name input (sign-up only).
	FieldName = "name"

	// FieldEmail targets the email input.
	FieldEmail = "email"

	// FieldPassword targets the password input.
	FieldPassword = "password"

	// FieldConfirmPassword targets the password confirmation input
	// (sign-up only).
	FieldConfirmPassword = "confirmPassword"
)

// Mode selects which required-field set a credential form is validated
// against.
type Mode int

const (
	// SignUp validates the full set: name, email, password, confirmation.
	SignUp Mode = iota
	// SignIn validates email and password only.
	SignIn
)

// CredentialForm carries the raw input values of the gate's credential
// screen. Unused fields are ignored for the given [Mode].
type CredentialForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// FieldErrors maps a field name to the message key of its first validation
// problem. Values are localization keys, never display strings; resolving
// them against the active locale is the caller's job. An empty map means
// the form is valid.
type FieldErrors map[string]string

// Message keys produced by [ValidateCredentials].
const (
	MsgNameRequired      = "error_name_required"
	MsgNameTooShort      = "error_name_too_short"
	MsgEmailRequired     = "error_email_required"
	MsgEmailInvalid      = "error_email_invalid"
	MsgPasswordRequired  = "error_password_required"
	MsgPasswordTooShort  = "error_password_too_short"
	MsgConfirmRequired   = "error_confirm_required"
	MsgPasswordsMismatch = "error_passwords_mismatch"
)

// emailPattern is the deliberately permissive local@domain.tld shape check:
// at least one non-space/non-@ character, a literal @, another such run, a
// literal dot, and a final run. Not RFC-compliant on purpose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateCredentials checks form against the required-field set of mode
// and returns the per-field problems. Rules:
//
//   - name (sign-up only): required, at least 2 characters after trimming;
//   - email: required, must pass [ValidateEmail];
//   - password: required, at least 8 characters in both modes;
//   - confirmation (sign-up only): required, must equal the password.
//
// Pure function: no storage access, no clock, no side effects.
func ValidateCredentials(form CredentialForm, mode Mode) FieldErrors {
	errs := make(FieldErrors)

	if mode == SignUp {
		name := strings.TrimSpace(form.Name)
		switch {
		case name == "":
			errs[FieldName] = MsgNameRequired
		case utf8.RuneCountInString(name) < 2:
			errs[FieldName] = MsgNameTooShort
		}
	}

	switch {
	case strings.TrimSpace(form.Email) == "":
		errs[FieldEmail] = MsgEmailRequired
	case !ValidateEmail(form.Email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	switch {
	case form.Password == "":
		errs[FieldPassword] = MsgPasswordRequired
	case utf8.RuneCountInString(form.Password) < 8:
		errs[FieldPassword] = MsgPasswordTooShort
	}

	if mode == SignUp {
		switch {
		case form.ConfirmPassword == "":
			errs[FieldConfirmPassword] = MsgConfirmRequired
		case form.ConfirmPassword != form.Password:
			errs[FieldConfirmPassword] = MsgPasswordsMismatch
		}
	}

	return errs
}

// strengthSymbols is the punctuation set counted by [PasswordStrength].
const strengthSymbols = `!@#$%^&*(),.?":{}|<>`

// PasswordStrength scores password from 0 to 4: one point each for length
// of at least 8, mixed lower and upper case, a digit, and a symbol from
// strengthSymbols. Feeds the cosmetic strength meter only; submission is
// gated by the length rule alone.
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	strength := 0
	if utf8.RuneCountInString(password) >= 8 {
		strength++
	}
	if strings.ContainsFunc(password, isASCIILower) && strings.ContainsFunc(password, isASCIIUpper) {
		strength++
	}
	if strings.ContainsFunc(password, isASCIIDigit) {
		strength++
	}
	if strings.ContainsAny(password, strengthSymbols) {
		strength++
	}

	return strength
}

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
