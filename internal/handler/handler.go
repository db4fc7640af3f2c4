package handler

import (
	"lecturebot/internal/catalog"
	"lecturebot/internal/domain"
	"lecturebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender is the outbound transport surface. Handlers never touch the
// bot API directly, which keeps dispatch testable without a network.
type Sender interface {
	SendText(chatID int64, text string, keyboard *tele.ReplyMarkup) error
	SendDocument(chatID int64, ref domain.FileRef, caption string) error
	SendVideo(chatID int64, ref domain.FileRef, caption string) error
	SendVoice(chatID int64, ref domain.FileRef, caption string) error
}

// Handler wires inbound bot events to the menu tree and the services
type Handler struct {
	bot     *tele.Bot
	sender  Sender
	tree    *catalog.Tree
	states  *service.StateService
	capture *service.CaptureService
	media   *service.MediaGroupService
	logger  *zap.Logger
}

// NewHandler creates a new handler instance. The media group service is
// created here so its flush callback lands back in the handler.
func NewHandler(
	bot *tele.Bot,
	sender Sender,
	tree *catalog.Tree,
	states *service.StateService,
	capture *service.CaptureService,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:     bot,
		sender:  sender,
		tree:    tree,
		states:  states,
		capture: capture,
		logger:  logger,
	}
	h.media = service.NewMediaGroupService(service.DefaultQuietWindow, h.onMediaBatch, logger)
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/get_ids", h.handleGetIDs)

	h.bot.Handle(tele.OnText, h.handleText)

	h.bot.Handle(tele.OnDocument, h.handleMedia)
	h.bot.Handle(tele.OnVideo, h.handleMedia)
	h.bot.Handle(tele.OnAudio, h.handleMedia)
	h.bot.Handle(tele.OnVoice, h.handleMedia)
	h.bot.Handle(tele.OnPhoto, h.handleMedia)
}

// Stop cancels pending media group timers
func (h *Handler) Stop() {
	h.media.Stop()
}
