package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the layout of the date inputs on the booking form
const DateLayout = "2006-01-02"

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	cardRegex   = regexp.MustCompile(`^[0-9\s]{13,19}$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	spaceRegex  = regexp.MustCompile(`\s`)
)

// IsValidEmail applies the same loose check the booking and contact forms use
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts an optional leading + and up to 16 digits; whitespace
// is ignored.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(spaceRegex.ReplaceAllString(phone, ""))
}

// IsValidCardNumber accepts 13 to 19 digits and spaces
func IsValidCardNumber(number string) bool {
	return cardRegex.MatchString(strings.TrimSpace(number))
}

// IsValidCVV accepts three or four digits
func IsValidCVV(cvv string) bool {
	return cvvRegex.MatchString(strings.TrimSpace(cvv))
}

// IsValidExpiry accepts MM/YY
func IsValidExpiry(expiry string) bool {
	return expiryRegex.MatchString(strings.TrimSpace(expiry))
}

// ParseDate parses a YYYY-MM-DD form date in UTC
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// RegisterValidators adds the form rules to a validator so they can be used
// in binding tags.
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		"emailaddr":  IsValidEmail,
		"phone":      IsValidPhone,
		"cardnumber": IsValidCardNumber,
		"cvv":        IsValidCVV,
		"expiry":     IsValidExpiry,
		"isodate": func(s string) bool {
			_, err := ParseDate(s)
			return err == nil
		},
	}
	for tag, check := range rules {
		check := check
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// NewValidator returns a validator that reads `binding` tags, the same tags
// gin uses, with the form rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

var tagMessages = map[string]string{
	"email":      "Please enter a valid email address",
	"emailaddr":  "Please enter a valid email address",
	"phone":      "Please enter a valid phone number",
	"cardnumber": "Please enter a valid card number",
	"cvv":        "Please enter a valid CVV",
	"expiry":     "Please enter a valid expiry date (MM/YY)",
	"isodate":    "Please enter a valid date (YYYY-MM-DD)",
}

// ValidationMessage turns a validator error into the message shown to the
// user. Only the first failing field is reported.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", lowerFirst(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", lowerFirst(fe.Field()), fe.Param())
	}
	return fmt.Sprintf("Invalid value for %s", lowerFirst(fe.Field()))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseLeadingInt reads the integer at the start of s, ignoring leading
// spaces and anything after the digits, so "2500abc" gives 2500. ok is false
// when s does not start with a number.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
