// Package validation checks collected credentials before they are submitted.
//
// Rules run in a fixed order and evaluation stops at the first failure, so the
// message a user sees always names the earliest problem:
//
//  1. email_required
//  2. name_required       (sign-up only)
//  3. password_required
//  4. email_format
//  5. password_format     (sign-up only)
//
// Each rule is a go-playground/validator tag applied to a single value; the
// two format rules are custom tags registered by New.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/authclient/internal/client/models"
	"github.com/go-playground/validator/v10"
)

const (
	RuleEmailRequired    = "email_required"
	RuleNameRequired     = "name_required"
	RulePasswordRequired = "password_required"
	RuleEmailFormat      = "email_format"
	RulePasswordFormat   = "password_format"
)

const (
	MsgEmailRequired    = "Please enter your email."
	MsgNameRequired     = "Please enter your name."
	MsgPasswordRequired = "Please enter your password."
	MsgEmailFormat      = "This is not a valid email address."
	MsgPasswordFormat   = "Password must be 8-50 characters and include a letter, a digit and one of $@^!%*#?&."
)

// PasswordSpecials is the set a sign-up password must draw at least one character from.
const PasswordSpecials = "$@^!%*#?&"

const (
	passwordMinLen = 8
	passwordMaxLen = 50
)

// emailPattern accepts a dotted or quoted local part, '@', and a domain of one
// or more dot-terminated labels followed by a TLD of at least two characters.
// Whitespace covers every Unicode space separator, vertical tab and BOM, not
// only the ASCII set RE2's \s matches.
var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\].,;:` + emailSpace + `@"]+(\.[^<>()\[\].,;:` + emailSpace + `@"]+)*)|(".+"))@(([^<>()\[\].,;:` + emailSpace + `@"]+\.)+[^<>()\[\].,;:` + emailSpace + `@"]{2,})$`,
)

const emailSpace = `\s\x0B\p{Z}\x{FEFF}`

type rule struct {
	id      string
	signUp  bool // rule applies to the sign-up form only
	value   func(c models.Credentials) string
	tag     string
	message string
}

var rules = []rule{
	{id: RuleEmailRequired, value: trimmed(email), tag: "required", message: MsgEmailRequired},
	{id: RuleNameRequired, signUp: true, value: trimmed(name), tag: "required", message: MsgNameRequired},
	{id: RulePasswordRequired, value: trimmed(password), tag: "required", message: MsgPasswordRequired},
	{id: RuleEmailFormat, value: trimmed(email), tag: RuleEmailFormat, message: MsgEmailFormat},
	{id: RulePasswordFormat, signUp: true, value: password, tag: RulePasswordFormat, message: MsgPasswordFormat},
}

func email(c models.Credentials) string    { return c.Email }
func name(c models.Credentials) string     { return c.Name }
func password(c models.Credentials) string { return c.Password }

func trimmed(f func(models.Credentials) string) func(models.Credentials) string {
	return func(c models.Credentials) string { return strings.TrimSpace(f(c)) }
}

// Validator runs the ordered credential rules. It holds no per-call state and
// is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the format tags registered.
func New() *Validator {
	v := validator.New()
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(RuleEmailFormat, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(RulePasswordFormat, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate returns the first rule c violates for form, or the zero
// ValidationResult when every applicable rule passes.
func (v *Validator) Validate(form models.Form, c models.Credentials) models.ValidationResult {
	for _, r := range rules {
		if r.signUp && form != models.SignUp {
			continue
		}
		if err := v.v.Var(r.value(c), r.tag); err != nil {
			return models.ValidationResult{Rule: r.id, Message: r.message}
		}
	}
	return models.ValidationResult{}
}

var defaultValidator = New()

// Validate checks c with a shared Validator.
func Validate(form models.Form, c models.Credentials) models.ValidationResult {
	return defaultValidator.Validate(form, c)
}

// IsEmail reports whether s has the shape local@label.tld.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether s is 8-50 characters on a single line and
// contains an ASCII letter, a digit and one of PasswordSpecials.
func IsStrongPassword(s string) bool {
	if strings.ContainsAny(s, "\r\n\u2028\u2029") {
		return false
	}
	if n := utf8.RuneCountInString(s); n < passwordMinLen || n > passwordMaxLen {
		return false
	}

	var letter, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		}
	}
	return letter && digit && special
}
