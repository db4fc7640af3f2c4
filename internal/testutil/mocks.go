package testutil

import (
	"lecturebot/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockStateRepository is a mock for repository.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load() (map[int64]domain.StateLabel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.StateLabel), args.Error(1)
}

func (m *MockStateRepository) Save(states map[int64]domain.StateLabel) error {
	args := m.Called(states)
	return args.Error(0)
}

// MockSender is a mock for handler.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendText(chatID int64, text string, keyboard *tele.ReplyMarkup) error {
	args := m.Called(chatID, text, keyboard)
	return args.Error(0)
}

func (m *MockSender) SendDocument(chatID int64, ref domain.FileRef, caption string) error {
	args := m.Called(chatID, ref, caption)
	return args.Error(0)
}

func (m *MockSender) SendVideo(chatID int64, ref domain.FileRef, caption string) error {
	args := m.Called(chatID, ref, caption)
	return args.Error(0)
}

func (m *MockSender) SendVoice(chatID int64, ref domain.FileRef, caption string) error {
	args := m.Called(chatID, ref, caption)
	return args.Error(0)
}
