package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/models"
)

// MaxNameLength bounds the onboarding name in runes.
const MaxNameLength = 64

var (
	validate = newValidator()

	// time.Parse accepts "7:00"; the stored format is strictly zero-padded 24h
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NotificationSettings checks the wake-up time format.
func NotificationSettings(s models.NotificationSettings) error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("%q does not satisfy %s", fe.Value(), fe.Tag()))
		}
		return apperrors.NewValidationError("notifications", err.Error())
	}
	return WakeUpTime(s.WakeUpTime)
}

// WakeUpTime checks a single HH:MM value.
func WakeUpTime(value string) error {
	if !clockPattern.MatchString(value) {
		return apperrors.NewValidationError("wakeUpTime", fmt.Sprintf("%q is not a 24-hour HH:MM time", value))
	}
	return nil
}

// AchievementText trims text and rejects empty input.
func AchievementText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.NewValidationError("achievement", "text cannot be empty")
	}
	return trimmed, nil
}

// UserName trims name and rejects empty or overly long input.
func UserName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperrors.NewValidationError("name", "name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", apperrors.NewValidationError("name", fmt.Sprintf("name must be at most %d characters", MaxNameLength))
	}
	return trimmed, nil
}

// Mood rejects legacy and unknown moods for new entries.
func Mood(m models.MoodType) error {
	if m.IsLegacy() {
		return apperrors.NewValidationError("mood", fmt.Sprintf("%s is a legacy mood and cannot be recorded", m))
	}
	if !m.Valid() {
		return apperrors.NewValidationError("mood", fmt.Sprintf("unknown mood %q", m))
	}
	return nil
}

func SubscriptionLevel(l models.SubscriptionLevel) error {
	if !l.Valid() {
		return apperrors.NewValidationError("subscriptionLevel", fmt.Sprintf("unknown level %q", l))
	}
	return nil
}
