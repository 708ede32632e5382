// Package seasonconfig resolves the current season from a remote JSON
// config document. The document is fetched once at startup; on failure
// the source falls back to a configured season so standings jobs keep
// running against a known value.
package seasonconfig

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

type Config struct {
	URL            string
	Timeout        time.Duration
	FallbackSeason string
}

type Source struct {
	httpClient *http.Client
	url        string
	fallback   string
	logger     *logging.Logger

	season atomic.Value
}

func NewSource(cfg Config, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s := &Source{
		httpClient: &http.Client{Timeout: timeout},
		url:        strings.TrimSpace(cfg.URL),
		fallback:   strings.TrimSpace(cfg.FallbackSeason),
		logger:     logger,
	}
	s.season.Store(s.fallback)
	return s
}

// Load fetches the config document and pins the current season. A
// fetch or parse failure leaves the fallback season in place and is
// reported to the caller only through a warning log, so startup never
// blocks on the config host.
func (s *Source) Load(ctx context.Context) {
	if s.url == "" {
		s.logger.InfoContext(ctx, "season config url not set, using fallback season", "season", s.fallback)
		return
	}

	season, err := s.fetch(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "season config fetch failed, using fallback season",
			"url", s.url,
			"fallback", s.fallback,
			"error", err,
		)
		return
	}

	s.season.Store(season)
	s.logger.InfoContext(ctx, "season config loaded", "season", season)
}

func (s *Source) CurrentSeason(_ context.Context) string {
	season, _ := s.season.Load().(string)
	return season
}

type seasonDocument struct {
	CurrentSeason string `json:"currentSeason"`
}

func (s *Source) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", crerr.Wrap(err, "create season config request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", crerr.Wrap(err, "request season config")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", crerr.Newf("season config fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", crerr.Wrap(err, "read season config response")
	}

	var doc seasonDocument
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return "", crerr.Wrap(err, "unmarshal season config document")
	}

	season := strings.TrimSpace(doc.CurrentSeason)
	if season == "" {
		return "", crerr.New("season config document has empty currentSeason")
	}

	return season, nil
}
