package service

import (
	"fmt"
	"testing"

	"lecturebot/internal/domain"
	"lecturebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateService_GetDefault(t *testing.T) {
	svc := NewStateService(new(testutil.MockStateRepository), testutil.NewTestLogger())

	assert.Equal(t, domain.StateHome, svc.Get(12345))
}

func TestStateService_SetGet(t *testing.T) {
	svc := NewStateService(new(testutil.MockStateRepository), testutil.NewTestLogger())

	svc.Set(123, "TERM_2")
	svc.Set(456, "PHYSICS")
	svc.Set(123, "GENETICS_MENU")

	assert.Equal(t, domain.StateLabel("GENETICS_MENU"), svc.Get(123))
	assert.Equal(t, domain.StateLabel("PHYSICS"), svc.Get(456))
	assert.Equal(t, domain.StateHome, svc.Get(789))
}

func TestStateService_Load(t *testing.T) {
	tests := []struct {
		name          string
		mockStates    map[int64]domain.StateLabel
		mockError     error
		expectedError bool
	}{
		{
			name: "states restored",
			mockStates: map[int64]domain.StateLabel{
				123: "TERM_2",
			},
		},
		{
			name:       "empty store",
			mockStates: map[int64]domain.StateLabel{},
		},
		{
			name:          "load failure",
			mockError:     fmt.Errorf("disk error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockStateRepository)
			mockRepo.On("Load").Return(tt.mockStates, tt.mockError)

			svc := NewStateService(mockRepo, testutil.NewTestLogger())

			err := svc.Load()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				for userID, label := range tt.mockStates {
					assert.Equal(t, label, svc.Get(userID))
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStateService_Flush(t *testing.T) {
	mockRepo := new(testutil.MockStateRepository)
	mockRepo.On("Save", map[int64]domain.StateLabel{
		123: "TERM_2",
		456: "PHYSICS",
	}).Return(nil)

	svc := NewStateService(mockRepo, testutil.NewTestLogger())
	svc.Set(123, "TERM_2")
	svc.Set(456, "PHYSICS")

	require.NoError(t, svc.Flush())
	mockRepo.AssertExpectations(t)
}

func TestStateService_FlushError(t *testing.T) {
	mockRepo := new(testutil.MockStateRepository)
	mockRepo.On("Save", map[int64]domain.StateLabel{}).Return(fmt.Errorf("disk full"))

	svc := NewStateService(mockRepo, testutil.NewTestLogger())

	assert.Error(t, svc.Flush())
	mockRepo.AssertExpectations(t)
}

func TestStateService_RoundTrip(t *testing.T) {
	// Set, flush, then a fresh service loading the same snapshot must
	// see the last value set before the flush.
	var persisted map[int64]domain.StateLabel

	mockRepo := new(testutil.MockStateRepository)
	mockRepo.On("Save", map[int64]domain.StateLabel{123: "PHYSICS"}).Return(nil)

	svc := NewStateService(mockRepo, testutil.NewTestLogger())
	svc.Set(123, "TERM_2")
	svc.Set(123, "PHYSICS")
	require.NoError(t, svc.Flush())

	persisted = map[int64]domain.StateLabel{123: "PHYSICS"}

	restartRepo := new(testutil.MockStateRepository)
	restartRepo.On("Load").Return(persisted, nil)

	restarted := NewStateService(restartRepo, testutil.NewTestLogger())
	require.NoError(t, restarted.Load())

	assert.Equal(t, domain.StateLabel("PHYSICS"), restarted.Get(123))
}
