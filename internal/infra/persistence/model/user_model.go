package model

import (
	"time"

	"linkup/internal/domain/entity"

	"github.com/samber/lo"
)

// Field names on the user document.
const (
	UserFieldFCMTokens              = "fcmTokens"
	UserFieldLastPortInReminderSent = "lastPortInReminderSent"
)

// UserDocument is the raw shape of a 'users' document.
// Fields are decoded by hand because clients write fcmTokens loosely.
type UserDocument struct {
	ID   string
	Data map[string]any
}

// ToDomain converts the document into an entity, dropping malformed tokens.
func (d UserDocument) ToDomain() *entity.User {
	return &entity.User{
		ID:                     d.ID,
		FCMTokens:              decodeTokens(d.Data[UserFieldFCMTokens]),
		LastPortInReminderSent: decodeOptionalTime(d.Data[UserFieldLastPortInReminderSent]),
	}
}

// decodeTokens keeps non-empty string entries, first occurrence wins.
func decodeTokens(raw any) []string {
	var values []any
	switch typed := raw.(type) {
	case []any:
		values = typed
	case []string:
		values = lo.ToAnySlice(typed)
	default:
		return nil
	}

	tokens := lo.FilterMap(values, func(value any, _ int) (string, bool) {
		token, ok := value.(string)

		return token, ok && token != ""
	})

	return lo.Uniq(tokens)
}

func decodeOptionalTime(raw any) *time.Time {
	switch typed := raw.(type) {
	case time.Time:
		if typed.IsZero() {
			return nil
		}

		return &typed
	case *time.Time:
		return typed
	default:
		return nil
	}
}
