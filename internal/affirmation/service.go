package affirmation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
)

// Service wraps a provider with a timeout and the local fallback.
type Service struct {
	provider Provider
	timeout  time.Duration
}

func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = constants.DefaultAffirmationTimeout
	}
	return &Service{provider: provider, timeout: timeout}
}

// Fetch never fails: provider errors and empty answers resolve to
// Fallback(mood). There is no retry.
func (s *Service) Fetch(ctx context.Context, mood models.MoodType, userName string) string {
	if s == nil || s.provider == nil {
		return Fallback(mood)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Affirm(ctx, mood, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrAffirmationUnavailable) {
			logger.Debug("affirmation provider unavailable, using fallback", "mood", mood)
		} else {
			logger.Warn("affirmation request failed, using fallback", "mood", mood, "error", err)
		}
		return Fallback(mood)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback(mood)
	}
	return text
}
