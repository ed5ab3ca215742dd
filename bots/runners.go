package bots

import "context"

// ChatBotRunner is a bot that chats can subscribe to.
type ChatBotRunner interface {
	// Run listens for messages from clients until the context is done.
	Run(ctx context.Context) error
	// FeedBroadcast broadcasts anything that comes from a channel.
	FeedBroadcast(messageChannel <-chan ChatMessage) error
}

type ChatMessage struct {
	Text   string
	Banner string
}
