package handler

import (
	"fmt"
	"strings"

	"lecturebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const captureDoneButton = "✅ پایان دریافت فایل‌ها"

// handleGetIDs opens file-ID capture mode for the chat
func (h *Handler) handleGetIDs(c tele.Context) error {
	chatID := c.Chat().ID
	h.capture.Start(chatID)

	h.logger.Info("File capture started", zap.Int64("chat_id", chatID))

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(captureDoneButton)))

	return h.sender.SendText(chatID,
		"📥 حالا فایل‌هاتو بفرست. وقتی تموم شد روی «پایان دریافت فایل‌ها» بزن.",
		markup,
	)
}

// handleMedia feeds every inbound media message through the media
// group service; grouped files are debounced into one batch, the rest
// flush straight through.
func (h *Handler) handleMedia(c tele.Context) error {
	m, ok := mediaFromMessage(c.Message())
	if !ok {
		return nil
	}
	h.media.Add(m)
	return nil
}

// onMediaBatch is the flush callback of the media group service.
// The batch arrives sorted by message ID; each file goes through the
// same ingestion as an ungrouped one.
func (h *Handler) onMediaBatch(groupID string, batch []domain.Media) {
	if len(batch) == 0 {
		return
	}
	chatID := batch[0].ChatID

	if groupID != "" {
		notice := fmt.Sprintf("📎 یک گروه مدیا با %d فایل دریافت شد.", len(batch))
		if err := h.sender.SendText(chatID, notice, nil); err != nil {
			h.logger.Warn("Failed to send media group notice", zap.Error(err))
		}
	}

	for _, m := range batch {
		h.ingestFile(m)
	}
}

// ingestFile records a file ID when the chat is capturing; otherwise
// the file is ignored, media plays no role in menu navigation.
func (h *Handler) ingestFile(m domain.Media) {
	if h.capture.Add(m.ChatID, m.FileRef) {
		h.logger.Debug("File captured",
			zap.Int64("chat_id", m.ChatID),
			zap.String("kind", string(m.Kind)),
			zap.String("file_ref", string(m.FileRef)),
		)
	}
}

// finishCapture dumps the captured file IDs as quoted strings ready to
// paste into the catalogue, and closes the list.
func (h *Handler) finishCapture(chatID int64) error {
	refs, ok := h.capture.Finish(chatID)
	if !ok {
		return nil
	}

	if len(refs) > 0 {
		quoted := make([]string, 0, len(refs))
		for _, ref := range refs {
			quoted = append(quoted, fmt.Sprintf("%q", string(ref)))
		}
		dump := "📎 فایل آیدی‌ها (برای کد):\n\n" + strings.Join(quoted, ",\n")
		if err := h.sender.SendText(chatID, dump, nil); err != nil {
			return err
		}
	} else {
		if err := h.sender.SendText(chatID, "⚠️ هیچ فایلی دریافت نشد.", nil); err != nil {
			return err
		}
	}

	markup := &tele.ReplyMarkup{RemoveKeyboard: true}
	return h.sender.SendText(chatID, "✅ عملیات تمام شد.", markup)
}

// mediaFromMessage extracts the transport-agnostic media event from a
// telebot message
func mediaFromMessage(msg *tele.Message) (domain.Media, bool) {
	if msg == nil {
		return domain.Media{}, false
	}

	var kind domain.FileKind
	var fileID string

	switch {
	case msg.Document != nil:
		kind, fileID = domain.KindDocument, msg.Document.FileID
	case msg.Video != nil:
		kind, fileID = domain.KindVideo, msg.Video.FileID
	case msg.Audio != nil:
		kind, fileID = domain.KindAudio, msg.Audio.FileID
	case msg.Voice != nil:
		kind, fileID = domain.KindVoice, msg.Voice.FileID
	case msg.Photo != nil:
		kind, fileID = domain.KindPhoto, msg.Photo.FileID
	default:
		return domain.Media{}, false
	}

	return domain.Media{
		ChatID:    msg.Chat.ID,
		UserID:    msg.Sender.ID,
		Kind:      kind,
		FileRef:   domain.FileRef(fileID),
		GroupID:   msg.AlbumID,
		MessageID: msg.ID,
	}, true
}
