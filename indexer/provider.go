package indexer

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/config"
	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/indexer/source"
	"github.com/sp0x/scenetime/indexer/source/web"
	"github.com/sp0x/scenetime/indexer/status/models"
)

const (
	siteName   = "SceneTime"
	DefaultURL = "https://www.scenetime.com"

	loginPath    = "/takelogin.php"
	searchPath   = "/browse.php?search=%s%s"
	downloadPath = "/download.php/%s/%s"
	detailsPath  = "/details.php?id=%s"
	// TV categories
	categories = "&c2=1&c43=13&c9=1&c63=1&c77=1&c79=1&c100=1&c101=1"

	resultsTableSelector = "div#torrenttable"
	invalidLoginMarker   = "Username or password incorrect"

	loginTimeout    = 30 * time.Second
	minPollInterval = 20 * time.Minute
)

// Settings are the account and filtering options of the provider.
type Settings struct {
	URL        string
	Username   string
	Password   string
	Ratio      float64
	Thresholds search.Thresholds
}

// SettingsFromConfig reads the provider settings.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		URL:      cfg.GetString("url"),
		Username: cfg.GetString("username"),
		Password: cfg.GetString("password"),
		Ratio:    cfg.GetFloat64("ratio"),
		Thresholds: search.Thresholds{
			MinSeeders:  cfg.GetInt("minseed"),
			MinLeechers: cfg.GetInt("minleech"),
		},
	}
}

// Provider searches SceneTime through a logged in session.
type Provider struct {
	settings       Settings
	logger         logrus.FieldLogger
	contentFetcher source.ContentFetcher
	browserLock    sync.Mutex
	reporter       *StatusReporter
}

func NewProvider(settings Settings, fetcher source.ContentFetcher) *Provider {
	if settings.URL == "" {
		settings.URL = DefaultURL
	}
	settings.URL = strings.TrimSuffix(settings.URL, "/")
	logger := logrus.New()
	logger.Level = logrus.GetLevel()
	return &Provider{
		settings:       settings,
		logger:         logger.WithFields(logrus.Fields{"site": siteName}),
		contentFetcher: fetcher,
		reporter:       newStatusReporter(siteName),
	}
}

// NewProviderFromConfig creates a provider that uses a web session.
func NewProviderFromConfig(cfg config.Config) (*Provider, error) {
	browsr, err := web.NewBrowser(nil)
	if err != nil {
		return nil, fmt.Errorf("couldn't create browser: %w", err)
	}
	fetcher := web.NewWebContentFetcher(browsr, web.FetchOptions{
		Timeout:   time.Duration(cfg.GetInt("timeout")) * time.Second,
		RateLimit: cfg.GetFloat64("rate_limit"),
		DumpDir:   cfg.GetString("dump_dir"),
	})
	return NewProvider(SettingsFromConfig(cfg), fetcher), nil
}

func (p *Provider) Name() string {
	return siteName
}

func (p *Provider) URL() string {
	return p.settings.URL
}

// SeedRatio is the ratio to seed downloads up to, 0 when it's not set.
func (p *Provider) SeedRatio() float64 {
	return p.settings.Ratio
}

func (p *Provider) Thresholds() search.Thresholds {
	return p.settings.Thresholds
}

// MinPollInterval is the shortest time allowed between two polls of the site.
func (p *Provider) MinPollInterval() time.Duration {
	return minPollInterval
}

// SetLogger replaces the provider's logger, the site field is added to it.
func (p *Provider) SetLogger(logger logrus.FieldLogger) {
	p.logger = logger.WithFields(logrus.Fields{"site": siteName})
}

func (p *Provider) Status() *models.IndexStatus {
	return p.reporter.Status()
}

func (p *Provider) DetailsURL(id string) string {
	return p.settings.URL + fmt.Sprintf(detailsPath, id)
}

func (p *Provider) downloadURL(id, title string) string {
	fileName := strings.ReplaceAll(title, " ", ".") + ".torrent"
	return p.settings.URL + fmt.Sprintf(downloadPath, id, url.PathEscape(fileName))
}

func (p *Provider) searchURL(term string) string {
	return p.settings.URL + fmt.Sprintf(searchPath, escapeTerm(term), categories)
}
