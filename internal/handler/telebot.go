package handler

import (
	"lecturebot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// TelebotSender implements Sender over a telebot instance
type TelebotSender struct {
	bot *tele.Bot
}

// NewTelebotSender creates a sender backed by the given bot
func NewTelebotSender(bot *tele.Bot) *TelebotSender {
	return &TelebotSender{bot: bot}
}

func (s *TelebotSender) SendText(chatID int64, text string, keyboard *tele.ReplyMarkup) error {
	if keyboard != nil {
		_, err := s.bot.Send(tele.ChatID(chatID), text, keyboard)
		return err
	}
	_, err := s.bot.Send(tele.ChatID(chatID), text)
	return err
}

func (s *TelebotSender) SendDocument(chatID int64, ref domain.FileRef, caption string) error {
	doc := &tele.Document{File: tele.File{FileID: string(ref)}, Caption: caption}
	_, err := s.bot.Send(tele.ChatID(chatID), doc)
	return err
}

func (s *TelebotSender) SendVideo(chatID int64, ref domain.FileRef, caption string) error {
	video := &tele.Video{File: tele.File{FileID: string(ref)}, Caption: caption}
	_, err := s.bot.Send(tele.ChatID(chatID), video)
	return err
}

func (s *TelebotSender) SendVoice(chatID int64, ref domain.FileRef, caption string) error {
	voice := &tele.Voice{File: tele.File{FileID: string(ref)}, Caption: caption}
	_, err := s.bot.Send(tele.ChatID(chatID), voice)
	return err
}
