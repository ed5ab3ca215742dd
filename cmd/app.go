package main

import (
	"fmt"
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/bots"
	"github.com/sp0x/scenetime/config"
	"github.com/sp0x/scenetime/indexer"
	"github.com/sp0x/scenetime/indexer/cache"
	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/storage"
	"github.com/sp0x/scenetime/storage/bolt"
)

func newProvider() (*indexer.Provider, error) {
	provider, err := indexer.NewProviderFromConfig(&appConfig)
	if err != nil {
		return nil, err
	}
	if appConfig.GetString("username") == "" || appConfig.GetString("password") == "" {
		return nil, fmt.Errorf("a username and password are required, set them in the config or with -u and -p")
	}
	return provider, nil
}

func openStorage() (storage.ReleaseStorage, error) {
	return storage.NewBuilderFromConfig(&appConfig).Build()
}

// poller wires the provider to the release storage.
type poller struct {
	provider *indexer.Provider
	store    storage.ReleaseStorage
	rss      *cache.RSSCache
	notifier *bots.TelegramRunner
	closers  []func() error
}

func newPoller() (*poller, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}
	store, err := openStorage()
	if err != nil {
		return nil, err
	}
	p := &poller{
		provider: provider,
		store:    store,
		rss:      cache.NewRSSCache(provider, store),
		closers:  []func() error{store.Close},
	}
	if err := p.setupNotifier(); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

func (p *poller) setupNotifier() error {
	token := appConfig.GetString("telegram_token")
	if token == "" {
		return nil
	}
	chats, ok := p.store.(*bolt.BoltStorage)
	if !ok {
		var err error
		chats, err = bolt.NewBoltStorage(path.Join(config.GetDataPath("db"), "chats.db"))
		if err != nil {
			return fmt.Errorf("couldn't open the chat storage: %w", err)
		}
		p.closers = append(p.closers, chats.Close)
	}
	if chatID := int64(appConfig.GetInt("telegram_chat")); chatID != 0 {
		if err := chats.StoreChat(&bolt.Chat{ChatID: chatID}); err != nil {
			return err
		}
	}
	notifier, err := bots.NewTelegram(token, chats, bots.DefaultTelegramProvider)
	if err != nil {
		return fmt.Errorf("couldn't start the telegram bot: %w", err)
	}
	notifier.LinkFor = func(release *search.Release) string {
		return p.provider.DetailsURL(release.LocalID)
	}
	p.notifier = notifier
	return nil
}

// pollOnce stores the newest releases and tells subscribers about the new ones.
func (p *poller) pollOnce() {
	result, err := p.rss.Update()
	if err != nil {
		log.WithError(err).Error("Polling failed")
		return
	}
	if result.Skipped {
		return
	}
	for _, release := range result.New {
		log.WithFields(log.Fields{"id": release.LocalID, "size": release.SizeStr()}).
			Infof("New release: %s", release.Title)
	}
	if p.notifier != nil && len(result.New) > 0 {
		if err := p.notifier.NotifyReleases(result.New); err != nil {
			log.WithError(err).Warning("Couldn't notify chats")
		}
	}
}

func (p *poller) Close() error {
	var firstErr error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
