package handler

import (
	"fmt"
	"testing"

	"lecturebot/internal/catalog"
	"lecturebot/internal/domain"
	"lecturebot/internal/service"
	"lecturebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testChatID = int64(100)
	testUserID = int64(100)
)

// testTree deliberately registers the same button text ("📘 رفرنس")
// under two different states with different payloads.
func testTree(t *testing.T) *catalog.Tree {
	t.Helper()

	root := &catalog.Node{
		Label:  domain.StateHome,
		Prompt: "انتخاب ترم",
		Children: []*catalog.Node{
			{
				Label:  "TERM_1",
				Button: "📘 ترم 1",
				Prompt: "انتخاب درس",
				Back:   "🔙 بازگشت به منوی اصلی",
				Children: []*catalog.Node{
					{
						Label:  "TERM_1_REF",
						Button: "📘 رفرنس",
						Kind:   domain.KindDocument,
						Done:   "✅ تمام شد",
						Files:  []domain.FileRef{"t1-a", "t1-b", "t1-c"},
					},
					{
						Label:  "SUBJECT",
						Button: "🧪 درس",
						Prompt: "انتخاب منبع",
						Back:   "🔙 بازگشت به منوی قبلی",
						Children: []*catalog.Node{
							{
								Label:   "SUBJECT_REF",
								Button:  "📘 رفرنس",
								Kind:    domain.KindVideo,
								Caption: "ویدیو",
								Files:   []domain.FileRef{"subj-a"},
							},
						},
					},
				},
			},
			{
				Label:  "TERM_2",
				Button: "📗 ترم 2",
				Prompt: "انتخاب درس",
				Back:   "🔙 بازگشت به منوی اصلی",
				Children: []*catalog.Node{
					{
						Label:  "TERM_2_REF",
						Button: "📘 رفرنس",
						Kind:   domain.KindDocument,
						Files:  []domain.FileRef{"t2-a"},
					},
				},
			},
		},
	}

	tree, err := catalog.Build(root)
	require.NoError(t, err)
	return tree
}

func newTestHandler(t *testing.T) (*Handler, *testutil.MockSender, *service.StateService) {
	t.Helper()

	sender := new(testutil.MockSender)
	states := service.NewStateService(new(testutil.MockStateRepository), testutil.NewTestLogger())
	h := NewHandler(nil, sender, testTree(t), states, service.NewCaptureService(), testutil.NewTestLogger())
	t.Cleanup(h.Stop)
	return h, sender, states
}

func TestDispatch_MenuTransition(t *testing.T) {
	h, sender, states := newTestHandler(t)

	sender.On("SendText", testChatID, "انتخاب درس", mock.Anything).Return(nil)

	err := h.Dispatch(testChatID, testUserID, "📘 ترم 1")

	require.NoError(t, err)
	assert.Equal(t, domain.StateLabel("TERM_1"), states.Get(testUserID))
	sender.AssertExpectations(t)
}

func TestDispatch_StateScopedTriggers(t *testing.T) {
	tests := []struct {
		name          string
		state         domain.StateLabel
		expectedCalls func(sender *testutil.MockSender)
	}{
		{
			name:  "reference under TERM_1",
			state: "TERM_1",
			expectedCalls: func(sender *testutil.MockSender) {
				sender.On("SendDocument", testChatID, domain.FileRef("t1-a"), "").Return(nil)
				sender.On("SendDocument", testChatID, domain.FileRef("t1-b"), "").Return(nil)
				sender.On("SendDocument", testChatID, domain.FileRef("t1-c"), "").Return(nil)
				sender.On("SendText", testChatID, "✅ تمام شد", mock.Anything).Return(nil)
			},
		},
		{
			name:  "reference under TERM_2",
			state: "TERM_2",
			expectedCalls: func(sender *testutil.MockSender) {
				sender.On("SendDocument", testChatID, domain.FileRef("t2-a"), "").Return(nil)
			},
		},
		{
			name:  "reference under SUBJECT sends video",
			state: "SUBJECT",
			expectedCalls: func(sender *testutil.MockSender) {
				sender.On("SendVideo", testChatID, domain.FileRef("subj-a"), "ویدیو").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sender, states := newTestHandler(t)
			states.Set(testUserID, tt.state)
			tt.expectedCalls(sender)

			err := h.Dispatch(testChatID, testUserID, "📘 رفرنس")

			require.NoError(t, err)
			sender.AssertExpectations(t)
			// The other states' handlers must not have fired
			sender.AssertNotCalled(t, "SendVoice", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDispatch_LeafKeepsState(t *testing.T) {
	h, sender, states := newTestHandler(t)
	states.Set(testUserID, "TERM_2")

	sender.On("SendDocument", testChatID, domain.FileRef("t2-a"), "").Return(nil)

	err := h.Dispatch(testChatID, testUserID, "📘 رفرنس")

	require.NoError(t, err)
	assert.Equal(t, domain.StateLabel("TERM_2"), states.Get(testUserID))
}

func TestDispatch_BackRendersParent(t *testing.T) {
	h, sender, states := newTestHandler(t)
	states.Set(testUserID, "SUBJECT")

	sender.On("SendText", testChatID, "انتخاب درس", mock.Anything).Return(nil)

	err := h.Dispatch(testChatID, testUserID, "🔙 بازگشت به منوی قبلی")

	require.NoError(t, err)
	assert.Equal(t, domain.StateLabel("TERM_1"), states.Get(testUserID))
	sender.AssertExpectations(t)
}

func TestDispatch_BackFromTermReachesHome(t *testing.T) {
	h, sender, states := newTestHandler(t)
	states.Set(testUserID, "TERM_1")

	sender.On("SendText", testChatID, "انتخاب ترم", mock.Anything).Return(nil)

	err := h.Dispatch(testChatID, testUserID, "🔙 بازگشت به منوی اصلی")

	require.NoError(t, err)
	assert.Equal(t, domain.StateHome, states.Get(testUserID))
}

func TestDispatch_FallbackKeepsState(t *testing.T) {
	tests := []struct {
		name  string
		state domain.StateLabel
		text  string
	}{
		{
			name:  "unknown text at home",
			state: domain.StateHome,
			text:  "سلام",
		},
		{
			name:  "foreign back label not registered here",
			state: "TERM_2",
			text:  "🔙 بازگشت به منوی قبلی",
		},
		{
			name:  "button of another state",
			state: domain.StateHome,
			text:  "🧪 درس",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sender, states := newTestHandler(t)
			states.Set(testUserID, tt.state)

			sender.On("SendText", testChatID, fallbackText, mock.Anything).Return(nil).Once()

			err := h.Dispatch(testChatID, testUserID, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.state, states.Get(testUserID))
			sender.AssertExpectations(t)
		})
	}
}

func TestDispatch_UnknownStoredStateDegradesToHome(t *testing.T) {
	h, sender, states := newTestHandler(t)
	states.Set(testUserID, "REMOVED_FROM_CATALOGUE")

	sender.On("SendText", testChatID, "انتخاب درس", mock.Anything).Return(nil)

	err := h.Dispatch(testChatID, testUserID, "📘 ترم 1")

	require.NoError(t, err)
	assert.Equal(t, domain.StateLabel("TERM_1"), states.Get(testUserID))
}

func TestSendLeaf_PartialBatchOnFailure(t *testing.T) {
	h, sender, states := newTestHandler(t)
	states.Set(testUserID, "TERM_1")

	sendErr := fmt.Errorf("Bad Request: wrong file identifier")

	sender.On("SendDocument", testChatID, domain.FileRef("t1-a"), "").Return(nil)
	sender.On("SendDocument", testChatID, domain.FileRef("t1-b"), "").Return(sendErr)
	sender.On("SendDocument", testChatID, domain.FileRef("t1-c"), "").Return(nil)
	sender.On("SendText", testChatID, sendFileErrorPrefix+sendErr.Error(), mock.Anything).Return(nil)
	sender.On("SendText", testChatID, "✅ تمام شد", mock.Anything).Return(nil)

	err := h.Dispatch(testChatID, testUserID, "📘 رفرنس")

	require.NoError(t, err)
	sender.AssertExpectations(t)
	sender.AssertNumberOfCalls(t, "SendDocument", 3)
}

func TestMenuMarkup(t *testing.T) {
	node := &catalog.Node{
		Label:  "X",
		Prompt: "p",
		Back:   "back",
		Children: []*catalog.Node{
			{Label: "A", Button: "a", Kind: domain.KindDocument, Files: []domain.FileRef{"f"}},
			{Label: "B", Button: "b", Kind: domain.KindDocument, Files: []domain.FileRef{"f"}},
			{Label: "C", Button: "c", Kind: domain.KindDocument, Files: []domain.FileRef{"f"}},
		},
	}

	markup := menuMarkup(node)

	require.True(t, markup.ResizeKeyboard)
	// Two columns by default: [a b] [c] [back]
	require.Len(t, markup.ReplyKeyboard, 3)
	assert.Len(t, markup.ReplyKeyboard[0], 2)
	assert.Len(t, markup.ReplyKeyboard[1], 1)
	assert.Equal(t, "back", markup.ReplyKeyboard[2][0].Text)

	node.Columns = 3
	markup = menuMarkup(node)
	require.Len(t, markup.ReplyKeyboard, 2)
	assert.Len(t, markup.ReplyKeyboard[0], 3)
}
