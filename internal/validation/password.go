package validation

import (
	"fmt"
	"unicode"

	validation "github.com/jellydator/validation"
)

// PasswordStrength is a jellydator rule enforcing length and character classes.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// CredentialPassword is the policy applied when provisioning or changing the local credential.
var CredentialPassword = PasswordStrength{
	MinLength:      12,
	RequireUpper:   true,
	RequireLower:   true,
	RequireNumber:  true,
	RequireSpecial: true,
}

type charClasses struct {
	upper, lower, number, special bool
}

func classify(s string) charClasses {
	var c charClasses
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsNumber(r):
			c.number = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			c.special = true
		}
	}
	return c
}

// Validate reports the first requirement the value misses. Length counts bytes.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}

	c := classify(s)
	switch {
	case p.RequireUpper && !c.upper:
		return validation.NewError("validation_password_uppercase", "password must contain at least one uppercase letter")
	case p.RequireLower && !c.lower:
		return validation.NewError("validation_password_lowercase", "password must contain at least one lowercase letter")
	case p.RequireNumber && !c.number:
		return validation.NewError("validation_password_number", "password must contain at least one number")
	case p.RequireSpecial && !c.special:
		return validation.NewError("validation_password_special", "password must contain at least one special character")
	}
	return nil
}
