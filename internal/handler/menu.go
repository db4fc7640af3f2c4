package handler

import (
	"strings"

	"lecturebot/internal/catalog"
	"lecturebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const fallbackText = `دوست عزیز ! پیامت توسط بات شناسایی نشد ⚠️
لطفا دوباره درخواستت رو ارسال کن ♻️
اگه باز هم به مشکل خوردی روی /start بزن ✅`

const sendFileErrorPrefix = "❗ خطا در ارسال فایل: "

// handleStart resets the user to the root menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.renderMenu(c.Chat().ID, userID, h.tree.Root())
}

// handleText routes every non-command text message through Dispatch
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return nil
	}
	return h.Dispatch(c.Chat().ID, c.Sender().ID, text)
}

// Dispatch resolves a button press against the user's current state.
// Resolution order: capture finish button, back edge, child edge,
// fallback. The same button text under a different state resolves to
// that state's own child, never to this one's.
func (h *Handler) Dispatch(chatID, userID int64, text string) error {
	if text == captureDoneButton && h.capture.Active(chatID) {
		return h.finishCapture(chatID)
	}

	node := h.currentNode(userID)

	if node.Back != "" && text == node.Back && node.Parent() != nil {
		return h.renderMenu(chatID, userID, node.Parent())
	}

	if child, ok := node.Child(text); ok {
		if child.IsLeaf() {
			// Leaf sends keep the user at the current menu
			return h.sendLeaf(chatID, child)
		}
		return h.renderMenu(chatID, userID, child)
	}

	h.logger.Debug("Unrecognized input",
		zap.Int64("user_id", userID),
		zap.String("state", string(node.Label)),
		zap.String("text", text),
	)

	// A typo must not destroy navigation progress, so state is kept
	return h.sender.SendText(chatID, fallbackText, nil)
}

// currentNode maps the stored state label to a tree node.
// Unknown labels (catalogue changed between restarts) degrade to HOME.
func (h *Handler) currentNode(userID int64) *catalog.Node {
	label := h.states.Get(userID)
	if node, ok := h.tree.Node(label); ok {
		return node
	}
	return h.tree.Root()
}

// renderMenu records the new state first, then sends the keyboard, so
// a failed send never leaves the stored state behind the reply.
func (h *Handler) renderMenu(chatID, userID int64, node *catalog.Node) error {
	h.states.Set(userID, node.Label)
	return h.sender.SendText(chatID, node.Prompt, menuMarkup(node))
}

// sendLeaf sends every file of the leaf in catalogue order. A failed
// file is reported inline and must not abort the rest of the batch.
func (h *Handler) sendLeaf(chatID int64, node *catalog.Node) error {
	if node.Intro != "" {
		if err := h.sender.SendText(chatID, node.Intro, nil); err != nil {
			return err
		}
	}

	for _, ref := range node.Files {
		if err := h.sendFile(chatID, node.Kind, ref, node.Caption); err != nil {
			h.logger.Warn("Failed to send file",
				zap.Error(err),
				zap.String("state", string(node.Label)),
				zap.String("file_ref", string(ref)),
			)
			if serr := h.sender.SendText(chatID, sendFileErrorPrefix+err.Error(), nil); serr != nil {
				return serr
			}
		}
	}

	if node.Done != "" {
		return h.sender.SendText(chatID, node.Done, nil)
	}
	return nil
}

func (h *Handler) sendFile(chatID int64, kind domain.FileKind, ref domain.FileRef, caption string) error {
	switch kind {
	case domain.KindVideo:
		return h.sender.SendVideo(chatID, ref, caption)
	case domain.KindVoice:
		return h.sender.SendVoice(chatID, ref, caption)
	default:
		return h.sender.SendDocument(chatID, ref, caption)
	}
}

// menuMarkup builds the reply keyboard for a menu node: its children's
// buttons in catalogue order, the back button on its own last row.
func menuMarkup(node *catalog.Node) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	columns := node.Columns
	if columns <= 0 {
		columns = 2
	}

	var rows []tele.Row
	var row []tele.Btn
	for _, child := range node.Children {
		row = append(row, markup.Text(child.Button))
		if len(row) == columns {
			rows = append(rows, markup.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, markup.Row(row...))
	}
	if node.Back != "" {
		rows = append(rows, markup.Row(markup.Text(node.Back)))
	}

	markup.Reply(rows...)
	return markup
}
