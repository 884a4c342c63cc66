package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldValidity is the outcome of validating one field.
type FieldValidity struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() FieldValidity { return FieldValidity{Valid: true} }

func invalid(format string, args ...interface{}) FieldValidity {
	return FieldValidity{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// PhonePolicy describes acceptable phone numbers: exactly Digits ASCII digits
// whose numeric value lies in [Min, Max].
type PhonePolicy struct {
	Digits int
	Min    uint64
	Max    uint64
}

// DefaultPhonePolicy accepts ten digit numbers.
var DefaultPhonePolicy = PhonePolicy{Digits: 10, Min: 1000000000, Max: 9999999999}

var (
	phonePolicy   = DefaultPhonePolicy
	phonePolicyMu sync.RWMutex
)

// SetPhonePolicy replaces the policy used by ValidatePhoneNumber and the phonenumber tag.
// Zero fields keep their defaults.
func SetPhonePolicy(p PhonePolicy) {
	if p.Digits <= 0 {
		p.Digits = DefaultPhonePolicy.Digits
	}
	if p.Min == 0 {
		p.Min = DefaultPhonePolicy.Min
	}
	if p.Max == 0 {
		p.Max = DefaultPhonePolicy.Max
	}
	phonePolicyMu.Lock()
	defer phonePolicyMu.Unlock()
	phonePolicy = p
}

// CurrentPhonePolicy returns the active phone policy.
func CurrentPhonePolicy() PhonePolicy {
	phonePolicyMu.RLock()
	defer phonePolicyMu.RUnlock()
	return phonePolicy
}

// Validate checks n against the policy.
func (p PhonePolicy) Validate(n string) FieldValidity {
	if len(n) != p.Digits {
		return invalid("Phone number must be %d digits long", p.Digits)
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			return invalid("Phone number must contain only digits")
		}
	}
	v, err := strconv.ParseUint(n, 10, 64)
	if err != nil || v < p.Min || v > p.Max {
		return invalid("Phone number must be between %d and %d", p.Min, p.Max)
	}
	return valid()
}

// ValidatePhoneNumber checks n against the active phone policy.
func ValidatePhoneNumber(n string) FieldValidity {
	return CurrentPhonePolicy().Validate(n)
}

// ValidateGender accepts M, F, T or O.
func ValidateGender(g string) FieldValidity {
	if !model.Gender(g).Valid() {
		return invalid("Gender must be one of M, F, T, O")
	}
	return valid()
}

// ValidateDateOfBirth accepts a YYYY-MM-DD date that is not after today.
func ValidateDateOfBirth(dob string, now time.Time) FieldValidity {
	d, err := time.Parse(model.DateLayout, dob)
	if err != nil {
		return invalid("Date of birth must be in YYYY-MM-DD format")
	}
	today, _ := time.Parse(model.DateLayout, now.Format(model.DateLayout))
	if d.After(today) {
		return invalid("Date of birth cannot be in the future")
	}
	return valid()
}

// ValidateRequired rejects blank values.
func ValidateRequired(field, value string) FieldValidity {
	if strings.TrimSpace(value) == "" {
		return invalid("%s is required", field)
	}
	return valid()
}

// PhoneNumber is a phone number accepted as either a JSON string or a JSON number.
type PhoneNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PhoneNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PhoneNumber(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("phone number must be a string or an integer: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("phone number must be an integer: %w", err)
	}
	*p = PhoneNumber(n.String())
	return nil
}

func (p PhoneNumber) String() string {
	return string(p)
}

var validationMessages = map[string]string{
	"phonenumber": "Invalid phone number",
	"gender":      "Gender must be one of M, F, T, O",
	"dob":         "Date of birth must be a past date in YYYY-MM-DD format",
	"date":        "Date must be in YYYY-MM-DD format",
	"clock":       "Time must be in HH:MM format",
	"notblank":    "must not be blank",
	"required":    "is required",
	"uuid":        "must be a valid id",
	"gte":         "must not be negative",
}

// RegisterValidators adds the phonenumber, gender, dob, date, clock and notblank tags to v.
func RegisterValidators(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"phonenumber": func(fl validator.FieldLevel) bool {
			return ValidatePhoneNumber(fl.Field().String()).Valid
		},
		"gender": func(fl validator.FieldLevel) bool {
			return ValidateGender(fl.Field().String()).Valid
		},
		"dob": func(fl validator.FieldLevel) bool {
			return ValidateDateOfBirth(fl.Field().String(), time.Now()).Valid
		},
		"date": func(fl validator.FieldLevel) bool {
			_, err := time.Parse(model.DateLayout, fl.Field().String())
			return err == nil
		},
		"clock": func(fl validator.FieldLevel) bool {
			_, err := time.Parse(model.TimeOfDayLayout, fl.Field().String())
			return err == nil && len(fl.Field().String()) == len(model.TimeOfDayLayout)
		},
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return nil
}

var registerOnce sync.Once

// RegisterBindingValidators installs the custom tags on gin's binding engine.
func RegisterBindingValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not validator/v10")
			return
		}
		err = RegisterValidators(v)
	})
	return err
}

// ValidationMessage turns a binding error into a short client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg, ok := validationMessages[fe.Tag()]
		if !ok {
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
		switch fe.Tag() {
		case "phonenumber", "gender", "dob", "date", "clock":
			return msg
		}
		return fmt.Sprintf("%s %s", fe.Field(), msg)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Malformed JSON body"
	}
	return "Invalid request payload"
}
