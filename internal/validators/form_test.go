// SPDX-License-Identifier: Apache-2.0

package validators

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"visitor@sary-chelek.kg", true},
		{"first.last@example.co", true},
		{"not-an-email", false},
		{"a@b", false},
		{"@b.com", false},
		{"a@b.c", true}, // permissive on purpose: shape only
		{"a b@c.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidateCredentials_SignUp(t *testing.T) {
	valid := CredentialForm{
		Name:            "Aigerim",
		Email:           "aigerim@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	tests := []struct {
		name    string
		mutate  func(*CredentialForm)
		field   string
		wantMsg string
	}{
		{"valid form", func(f *CredentialForm) {}, "", ""},
		{"empty name", func(f *CredentialForm) { f.Name = "" }, FieldName, MsgNameRequired},
		{"whitespace name", func(f *CredentialForm) { f.Name = "   " }, FieldName, MsgNameRequired},
		{"one-char name", func(f *CredentialForm) { f.Name = " A " }, FieldName, MsgNameTooShort},
		{"empty email", func(f *CredentialForm) { f.Email = "" }, FieldEmail, MsgEmailRequired},
		{"bad email", func(f *CredentialForm) { f.Email = "a@b" }, FieldEmail, MsgEmailInvalid},
		{"empty password", func(f *CredentialForm) { f.Password = ""; f.ConfirmPassword = "" }, FieldPassword, MsgPasswordRequired},
		{"short password", func(f *CredentialForm) { f.Password = "short"; f.ConfirmPassword = "short" }, FieldPassword, MsgPasswordTooShort},
		{"empty confirmation", func(f *CredentialForm) { f.ConfirmPassword = "" }, FieldConfirmPassword, MsgConfirmRequired},
		{"mismatched confirmation", func(f *CredentialForm) { f.ConfirmPassword = "password124" }, FieldConfirmPassword, MsgPasswordsMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			errs := ValidateCredentials(form, SignUp)
			if tt.field == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if errs[tt.field] != tt.wantMsg {
				t.Errorf("expected %s=%q, got %v", tt.field, tt.wantMsg, errs)
			}
		})
	}
}

func TestValidateCredentials_SignIn(t *testing.T) {
	// Sign-in ignores name and confirmation entirely.
	errs := ValidateCredentials(CredentialForm{
		Email:    "a@b.com",
		Password: "password123",
	}, SignIn)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	// The length rule holds on sign-in too.
	errs = ValidateCredentials(CredentialForm{
		Email:    "a@b.com",
		Password: "short",
	}, SignIn)
	if errs[FieldPassword] != MsgPasswordTooShort {
		t.Errorf("expected password length error on sign-in, got %v", errs)
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abcdefgh", 1},             // length only
		{"abc", 0},                  // nothing earned
		{"Abcdefgh", 2},             // length + mixed case
		{"Abcdefg1", 3},             // + digit
		{"Abcdefg1!", 4},            // + symbol
		{"aB1!", 3},                 // everything but length
		{"password123", 2},          // length + digit, single case
		{`abcdefgh"`, 2},            // quote counts as a symbol
		{"abcdefgh-", 1},            // dash is not in the symbol set
	}

	for _, tt := range tests {
		if got := PasswordStrength(tt.password); got != tt.want {
			t.Errorf("PasswordStrength(%q) = %d, want %d", tt.password, got, tt.want)
		}
	}
}
