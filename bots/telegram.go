package bots

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/storage/bolt"
)

const (
	startCommand = "/start"
	stopCommand  = "/stop"
)

//go:generate mockgen -source telegram.go -destination=mocks/telegram.go -package=mocks
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
	StopReceivingUpdates()
}

// ChatStore keeps the chats that receive notifications.
type ChatStore interface {
	StoreChat(chat *bolt.Chat) error
	RemoveChat(id int64) error
	ForChat(callback func(chat *bolt.Chat)) error
}

type TelegramProvider func(token string) (BotAPI, error)

// DefaultTelegramProvider connects to the telegram api.
func DefaultTelegramProvider(token string) (BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", bot.Self.UserName)
	return bot, nil
}

type TelegramRunner struct {
	bot   BotAPI
	chats ChatStore
	// LinkFor is the link shown for a release, no link is shown if it's nil.
	LinkFor func(release *search.Release) string
}

// NewTelegram creates a new telegram bot runner.
func NewTelegram(token string, chats ChatStore, provider TelegramProvider) (*TelegramRunner, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}
	if provider == nil {
		return nil, errors.New("telegram api provider is required")
	}
	if chats == nil {
		return nil, errors.New("chat storage is required")
	}
	bot, err := provider(token)
	if err != nil {
		return nil, err
	}
	return &TelegramRunner{bot: bot, chats: chats}, nil
}

// Run the bot, listening for updates from users
func (t *TelegramRunner) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := t.bot.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramRunner) handleUpdate(update tgbotapi.Update) {
	// ignore any non-Message Updates
	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	chatID := update.Message.Chat.ID
	username := ""
	if update.Message.From != nil {
		username = update.Message.From.UserName
	}
	log.WithFields(log.Fields{"chat": chatID, "user": username}).Debug(update.Message.Text)
	var reply string
	switch update.Message.Text {
	case startCommand:
		err := t.chats.StoreChat(&bolt.Chat{
			Username:    username,
			InitialText: update.Message.Text,
			ChatID:      chatID,
		})
		if err != nil {
			log.Warningf("Couldn't store chat %d: %v", chatID, err)
			return
		}
		reply = "Hello. I'll keep you posted for new releases."
	case stopCommand:
		if err := t.chats.RemoveChat(chatID); err != nil {
			log.Warningf("Couldn't remove chat %d: %v", chatID, err)
			return
		}
		reply = "You won't get any more notifications."
	default:
		return
	}
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, reply)); err != nil {
		log.Warningf("Couldn't reply to chat %d: %v", chatID, err)
	}
}

// Broadcast a message to all active chats.
func (t *TelegramRunner) Broadcast(message *ChatMessage) error {
	return t.chats.ForChat(func(chat *bolt.Chat) {
		msg := tgbotapi.NewMessage(chat.ChatID, message.Text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := t.bot.Send(msg); err != nil {
			log.Warningf("Couldn't notify chat %d: %v", chat.ChatID, err)
		}
		if message.Banner != "" {
			imgMsg := tgbotapi.NewPhotoShare(chat.ChatID, message.Banner)
			_, _ = t.bot.Send(imgMsg)
		}
	})
}

// FeedBroadcast the messages that are passed to each one of the chats.
func (t *TelegramRunner) FeedBroadcast(messageChannel <-chan ChatMessage) error {
	if messageChannel == nil {
		return fmt.Errorf("message channel is required")
	}
	for chatMsg := range messageChannel {
		tmpChatMsg := chatMsg
		if err := t.Broadcast(&tmpChatMsg); err != nil {
			return err
		}
	}
	return nil
}

// NotifyReleases tells every chat about newly found releases.
func (t *TelegramRunner) NotifyReleases(releases []search.Release) error {
	for i := range releases {
		if err := t.Broadcast(&ChatMessage{Text: t.releaseText(&releases[i])}); err != nil {
			return err
		}
	}
	return nil
}

func (t *TelegramRunner) releaseText(release *search.Release) string {
	title := release.Title
	if t.LinkFor != nil {
		title = fmt.Sprintf("[%s](%s)", release.Title, t.LinkFor(release))
	}
	return fmt.Sprintf("*New release:* %s\nSize: %s, seeders: %d, leechers: %d",
		title, release.SizeStr(), release.Seeders, release.Leechers)
}
