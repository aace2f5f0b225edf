// Package validation проверяет входные данные коллекций и контактов
// с помощью go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/carddavsync/internal/carddav"
)

// ErrInvalid общий признак ошибки валидации для errors.Is
var ErrInvalid = errors.New("validation failed")

// UserIDPattern допустимый формат идентификатора пользователя хоста
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.@-]{1,128}$`)

// Error ошибка валидации с сообщениями по полям
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is позволяет проверять errors.Is(err, ErrInvalid)
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Validator обёртка над validator.Validate с доменными правилами
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("carddav_url", func(fl validator.FieldLevel) bool {
		return ValidateCollectionURL(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("user_id", func(fl validator.FieldLevel) bool {
		return UserIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("resource_id", func(fl validator.FieldLevel) bool {
		return carddav.ValidResourceID(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns *Error on failure.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = friendlyMessage(e)
	}
	return &Error{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "carddav_url":
		return "must be an absolute http(s) URL"
	case "user_id":
		return "may contain only letters, digits and _ . @ -"
	case "resource_id":
		return "must be a resource identifier"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}

// ValidateCollectionURL проверяет базовый URL коллекции: http или https,
// непустой хост, без query и fragment
func ValidateCollectionURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: url cannot be empty", ErrInvalid)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: url: %v", ErrInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalid)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url host cannot be empty", ErrInvalid)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%w: url must not contain query or fragment", ErrInvalid)
	}
	return nil
}

// ValidateUserID проверяет идентификатор пользователя хоста
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id cannot be empty", ErrInvalid)
	}
	if !UserIDPattern.MatchString(userID) {
		return fmt.Errorf("%w: user id may contain only letters, digits and _ . @ -", ErrInvalid)
	}
	return nil
}
