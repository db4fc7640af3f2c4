package service

import (
	"testing"

	"lecturebot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureService_AddRequiresOpenList(t *testing.T) {
	svc := NewCaptureService()

	assert.False(t, svc.Add(1, "file-1"))
	assert.False(t, svc.Active(1))
}

func TestCaptureService_StartAddFinish(t *testing.T) {
	svc := NewCaptureService()

	svc.Start(1)
	assert.True(t, svc.Active(1))

	assert.True(t, svc.Add(1, "file-1"))
	assert.True(t, svc.Add(1, "file-2"))

	refs, ok := svc.Finish(1)
	require.True(t, ok)
	assert.Equal(t, []domain.FileRef{"file-1", "file-2"}, refs)

	// Finishing closes the list
	assert.False(t, svc.Active(1))
	assert.False(t, svc.Add(1, "file-3"))
}

func TestCaptureService_StartClearsPrevious(t *testing.T) {
	svc := NewCaptureService()

	svc.Start(1)
	require.True(t, svc.Add(1, "stale"))

	svc.Start(1)
	require.True(t, svc.Add(1, "fresh"))

	refs, ok := svc.Finish(1)
	require.True(t, ok)
	assert.Equal(t, []domain.FileRef{"fresh"}, refs)
}

func TestCaptureService_FinishWithoutStart(t *testing.T) {
	svc := NewCaptureService()

	refs, ok := svc.Finish(1)
	assert.False(t, ok)
	assert.Nil(t, refs)
}

func TestCaptureService_FinishEmptyList(t *testing.T) {
	svc := NewCaptureService()

	svc.Start(1)
	refs, ok := svc.Finish(1)

	require.True(t, ok)
	assert.Empty(t, refs)
}

func TestCaptureService_ChatsAreIndependent(t *testing.T) {
	svc := NewCaptureService()

	svc.Start(1)
	svc.Start(2)
	require.True(t, svc.Add(1, "one"))
	require.True(t, svc.Add(2, "two"))

	refs1, ok := svc.Finish(1)
	require.True(t, ok)
	assert.Equal(t, []domain.FileRef{"one"}, refs1)

	refs2, ok := svc.Finish(2)
	require.True(t, ok)
	assert.Equal(t, []domain.FileRef{"two"}, refs2)
}
