package auth

import (
	"net/url"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password the password screens accept.
const MinPasswordLength = 8

// FieldError reports a submitted field that failed a check. Message is safe
// to show to the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	emailValidatorOnce sync.Once
	emailValidator     *validator.Validate
)

func validEmail(email string) bool {
	emailValidatorOnce.Do(func() {
		emailValidator = validator.New()
	})
	return emailValidator.Var(email, "required,email") == nil
}

// SignInSubmission is the data posted by SignIn.
type SignInSubmission struct {
	Email    string
	Password string
}

// SignUpSubmission is the data posted by SignUp. AccountType is empty when
// the screen offered no account types.
type SignUpSubmission struct {
	Email       string
	Password    string
	AccountType string
}

// ParseEmail reads and checks the email field.
func ParseEmail(form url.Values) (string, error) {
	email := strings.TrimSpace(form.Get(FieldEmail))
	if email == "" {
		return "", &FieldError{Field: FieldEmail, Message: "Email is required"}
	}
	if !validEmail(email) {
		return "", &FieldError{Field: FieldEmail, Message: "Enter a valid email address"}
	}
	return email, nil
}

func parsePassword(form url.Values) (string, error) {
	password := form.Get(FieldPassword)
	if password == "" {
		return "", &FieldError{Field: FieldPassword, Message: "Password is required"}
	}
	return password, nil
}

// ParseSignIn reads the sign-in form.
func ParseSignIn(form url.Values) (SignInSubmission, error) {
	email, err := ParseEmail(form)
	if err != nil {
		return SignInSubmission{}, err
	}
	password, err := parsePassword(form)
	if err != nil {
		return SignInSubmission{}, err
	}
	return SignInSubmission{Email: email, Password: password}, nil
}

// checkPasswordLength counts characters, not bytes.
func checkPasswordLength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &FieldError{Field: FieldPassword, Message: "Password must be at least 8 characters long"}
	}
	return nil
}

// ParseSignUp reads the sign-up form rendered with types. A missing account
// type falls back to the first one offered; an unknown one is rejected.
func ParseSignUp(form url.Values, types []AccountType) (SignUpSubmission, error) {
	email, err := ParseEmail(form)
	if err != nil {
		return SignUpSubmission{}, err
	}
	password, err := parsePassword(form)
	if err != nil {
		return SignUpSubmission{}, err
	}
	if err := checkPasswordLength(password); err != nil {
		return SignUpSubmission{}, err
	}
	types = accountTypesOrDefault(types)
	sub := SignUpSubmission{Email: email, Password: password}
	if len(types) == 0 {
		return sub, nil
	}
	requested := strings.TrimSpace(form.Get(FieldAccountType))
	if requested == "" {
		sub.AccountType = types[0].Label
		return sub, nil
	}
	for _, t := range types {
		if strings.EqualFold(t.Label, requested) {
			sub.AccountType = t.Label
			return sub, nil
		}
	}
	return SignUpSubmission{}, &FieldError{Field: FieldAccountType, Message: "Choose a valid account type"}
}

// ParseNewPassword reads the reset password form, checking the confirmation
// and the minimum length.
func ParseNewPassword(form url.Values) (string, error) {
	password := form.Get(FieldPassword)
	confirm := form.Get(FieldConfirmPassword)
	switch {
	case password == "":
		return "", &FieldError{Field: FieldPassword, Message: "Password is required"}
	case confirm == "":
		return "", &FieldError{Field: FieldConfirmPassword, Message: "Confirm password is required"}
	case password != confirm:
		return "", &FieldError{Field: FieldConfirmPassword, Message: "Passwords do not match"}
	}
	if err := checkPasswordLength(password); err != nil {
		return "", err
	}
	return password, nil
}

// ParseVerificationCode reads the code from the six digit inputs, or from a
// single pasted code field. Non-digits are dropped and anything past the
// sixth digit is ignored.
func ParseVerificationCode(form url.Values) (string, error) {
	raw := strings.Join(form[FieldDigit], "")
	if strings.TrimSpace(raw) == "" {
		raw = form.Get(FieldCode)
	}
	code := digitsOnly(raw)
	if len(code) > CodeLength {
		code = code[:CodeLength]
	}
	if len(code) != CodeLength {
		return "", &FieldError{Field: FieldCode, Message: "Enter the 6-digit code from your authenticator app"}
	}
	return code, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GroupCodes splits codes into consecutive groups of size. The last group
// may be shorter.
func GroupCodes(codes []string, size int) [][]string {
	if size <= 0 || len(codes) == 0 {
		return nil
	}
	groups := make([][]string, 0, (len(codes)+size-1)/size)
	for start := 0; start < len(codes); start += size {
		end := start + size
		if end > len(codes) {
			end = len(codes)
		}
		groups = append(groups, codes[start:end])
	}
	return groups
}
