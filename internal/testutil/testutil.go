package testutil

import (
	"lecturebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestMedia creates a media event for tests
func NewTestMedia(chatID int64, groupID string, messageID int, ref domain.FileRef) domain.Media {
	return domain.Media{
		ChatID:    chatID,
		UserID:    chatID,
		Kind:      domain.KindDocument,
		FileRef:   ref,
		GroupID:   groupID,
		MessageID: messageID,
	}
}
