package progression

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/resurs/internal/constants"
	apperrors "github.com/julianstephens/resurs/internal/errors"
	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
)

// storedUser mirrors UserRecord with the fields older records may lack
// left nullable.
type storedUser struct {
	models.UserRecord
	Notifications *models.NotificationSettings `json:"notifications"`
}

// LoadUser reads the user record and patches what older builds did not
// write: missing reminder settings get the defaults and a missing or unknown
// tier becomes free. A patched record is saved back. The bool is false when
// nobody has onboarded yet.
func (m *Model) LoadUser() (models.UserRecord, bool, error) {
	return m.readUser()
}

func (m *Model) readUser() (models.UserRecord, bool, error) {
	raw, ok, err := m.store.Get(constants.UserKey)
	if err != nil {
		return models.UserRecord{}, false, apperrors.NewStorageError("get", constants.UserKey, err)
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return models.UserRecord{}, false, nil
	}

	user, changed, err := decodeUser(raw)
	if err != nil {
		return models.UserRecord{}, false, apperrors.NewStorageError("decode", constants.UserKey, err)
	}
	if changed {
		if err := m.saveUser(user); err != nil {
			return models.UserRecord{}, false, err
		}
		logger.Info("user record migrated")
	}
	return user, true, nil
}

// decodeUser applies the load-time migration. It is idempotent: decoding
// its own output reports no change.
func decodeUser(raw []byte) (models.UserRecord, bool, error) {
	var stored storedUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		return models.UserRecord{}, false, fmt.Errorf("malformed user record: %w", err)
	}

	user := stored.UserRecord
	changed := false

	if stored.Notifications == nil {
		user.Notifications = models.DefaultNotificationSettings()
		changed = true
	} else {
		user.Notifications = *stored.Notifications
	}

	if level := user.SubscriptionLevel.Normalize(); level != user.SubscriptionLevel {
		user.SubscriptionLevel = level
		changed = true
	}

	// A stored record means onboarding happened
	if !user.IsOnboarded {
		user.IsOnboarded = true
		changed = true
	}

	if user.Flowers < 0 {
		user.Flowers = 0
		changed = true
	}

	return user, changed, nil
}
