package auth

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	return fe.Field
}

func TestParseSignIn(t *testing.T) {
	t.Parallel()

	got, err := ParseSignIn(url.Values{"email": {" ada@example.com "}, "password": {"secret"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Email != "ada@example.com" || got.Password != "secret" {
		t.Fatalf("unexpected submission: %+v", got)
	}

	tests := []struct {
		name  string
		form  url.Values
		field string
	}{
		{"missing email", url.Values{"password": {"x"}}, FieldEmail},
		{"invalid email", url.Values{"email": {"nope"}, "password": {"x"}}, FieldEmail},
		{"missing password", url.Values{"email": {"ada@example.com"}}, FieldPassword},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSignIn(tt.form)
			if field := fieldOf(t, err); field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, field)
			}
		})
	}
}

func TestParseSignUpAccountType(t *testing.T) {
	t.Parallel()

	base := url.Values{"email": {"ada@example.com"}, "password": {"secret-pass"}}

	got, err := ParseSignUp(base, nil)
	if err != nil || got.AccountType != "Business" {
		t.Fatalf("expected default first account type, got %+v, %v", got, err)
	}

	withType := url.Values{"email": base["email"], "password": base["password"], "account_type": {"individual"}}
	got, err = ParseSignUp(withType, nil)
	if err != nil || got.AccountType != "Individual" {
		t.Fatalf("expected Individual, got %+v, %v", got, err)
	}

	got, err = ParseSignUp(withType, []AccountType{})
	if err != nil || got.AccountType != "" {
		t.Fatalf("expected no account type, got %+v, %v", got, err)
	}

	bogus := url.Values{"email": base["email"], "password": base["password"], "account_type": {"Enterprise"}}
	_, err = ParseSignUp(bogus, nil)
	if field := fieldOf(t, err); field != FieldAccountType {
		t.Fatalf("expected account type error, got %q", field)
	}
}

func TestPasswordLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	// Eight characters, sixteen bytes.
	accented := "éééééééé"
	// Four characters, twelve bytes.
	short := "日本語か"

	signUp := func(password string) error {
		_, err := ParseSignUp(url.Values{"email": {"ada@example.com"}, "password": {password}}, nil)
		return err
	}
	reset := func(password string) error {
		_, err := ParseNewPassword(url.Values{"password": {password}, "confirm_password": {password}})
		return err
	}

	for name, parse := range map[string]func(string) error{"sign up": signUp, "reset": reset} {
		if err := parse(accented); err != nil {
			t.Fatalf("%s: expected eight accented characters to pass, got %v", name, err)
		}
		if field := fieldOf(t, parse(short)); field != FieldPassword {
			t.Fatalf("%s: expected password error for short multibyte password, got %q", name, field)
		}
	}
}

func TestParseNewPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{"missing", url.Values{}, "Password is required"},
		{"missing confirm", url.Values{"password": {"longenough"}}, "Confirm password is required"},
		{"mismatch", url.Values{"password": {"longenough"}, "confirm_password": {"different1"}}, "Passwords do not match"},
		{"short", url.Values{"password": {"short"}, "confirm_password": {"short"}}, "Password must be at least 8 characters long"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseNewPassword(tt.form)
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Message != tt.message {
				t.Fatalf("expected %q, got %v", tt.message, err)
			}
		})
	}

	got, err := ParseNewPassword(url.Values{"password": {"longenough"}, "confirm_password": {"longenough"}})
	if err != nil || got != "longenough" {
		t.Fatalf("expected password, got %q, %v", got, err)
	}
}

func TestParseVerificationCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form url.Values
		want string
		ok   bool
	}{
		{"digits", url.Values{"digit": {"1", "2", "3", "4", "5", "6"}}, "123456", true},
		{"pasted", url.Values{"code": {"123 456"}}, "123456", true},
		{"pasted long", url.Values{"code": {"123-456-789"}}, "123456", true},
		{"incomplete", url.Values{"digit": {"1", "2", "", "4", "5", "6"}}, "", false},
		{"letters", url.Values{"code": {"abcdef"}}, "", false},
		{"empty digits fall back to code", url.Values{"digit": {"", ""}, "code": {"654321"}}, "654321", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVerificationCode(tt.form)
			if tt.ok {
				if err != nil || got != tt.want {
					t.Fatalf("expected %q, got %q, %v", tt.want, got, err)
				}
				return
			}
			if field := fieldOf(t, err); field != FieldCode {
				t.Fatalf("expected code error, got %q", field)
			}
		})
	}
}

func TestGroupCodes(t *testing.T) {
	t.Parallel()

	got := GroupCodes([]string{"a", "b", "c", "d", "e"}, 3)
	want := [][]string{{"a", "b", "c"}, {"d", "e"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GroupCodes = %v, want %v", got, want)
	}
	if GroupCodes(nil, 3) != nil || GroupCodes([]string{"a"}, 0) != nil {
		t.Fatal("expected nil for empty input or invalid size")
	}
}
