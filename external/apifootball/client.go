package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"

	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/logging"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/platform/resilience"
	"github.com/Chango93/quinielacartoimagen-sub000/internal/usecase"
)

const (
	defaultBaseURL  = "https://api.football-feed.com/v2"
	defaultTimeout  = 20 * time.Second
	maxResponseSize = 4 << 20

	pathLive             = "/livescores"
	pathSchedulePrevious = "/schedules/previous"
	pathScheduleNext     = "/schedules/next"

	providerDateOnly = "2006-01-02"
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errFeedTransient = crerr.New("feed transient failure")
var errVerbRejected = crerr.New("feed verb rejected")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches score events from the external football feed. The provider
// exposes three endpoint shapes with uneven availability; FetchEvents degrades
// to whatever subset answered, so one dead mirror never aborts a sync cycle.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchEvents pulls live scores plus the previous and next schedule windows
// concurrently and merges them into one deduplicated, sorted event list. A
// single failing source only loses that source's rows; all three failing is a
// hard error surfaced to the caller.
func (c *Client) FetchEvents(ctx context.Context, from, to time.Time) ([]usecase.FeedEvent, error) {
	query := map[string]string{
		"from": from.UTC().Format(providerDateOnly),
		"to":   to.UTC().Format(providerDateOnly),
	}

	sources := []struct {
		name string
		path string
	}{
		{name: "live", path: pathLive},
		{name: "schedule_previous", path: pathSchedulePrevious},
		{name: "schedule_next", path: pathScheduleNext},
	}

	var mu sync.Mutex
	var merged []usecase.FeedEvent
	var sourceErrs []error

	var wg conc.WaitGroup
	for _, source := range sources {
		source := source
		wg.Go(func() {
			events, err := c.fetchSource(ctx, source.path, query)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				sourceErrs = append(sourceErrs, fmt.Errorf("%s: %w", source.name, err))
				c.logger.WarnContext(ctx, "feed source failed, continuing with remaining sources",
					"source", source.name,
					"error", err,
				)
				return
			}
			merged = append(merged, events...)
		})
	}
	wg.Wait()

	if len(sourceErrs) == len(sources) {
		return nil, fmt.Errorf("%w: all feed sources failed: %v", usecase.ErrDependencyUnavailable, stderrors.Join(sourceErrs...))
	}

	return dedupeEvents(merged), nil
}

// fetchSource queries one endpoint shape. Some provider mirrors reject GET on
// the schedule endpoints with 405; the same call is repeated once with POST
// before the source counts as failed.
func (c *Client) fetchSource(ctx context.Context, path string, query map[string]string) ([]usecase.FeedEvent, error) {
	var envelope eventsEnvelope
	err := c.doJSON(ctx, http.MethodGet, path, query, &envelope)
	if stderrors.Is(err, errVerbRejected) {
		c.logger.DebugContext(ctx, "feed endpoint rejected GET, retrying with POST", "path", path)
		envelope = eventsEnvelope{}
		err = c.doJSON(ctx, http.MethodPost, path, query, &envelope)
	}
	if err != nil {
		return nil, err
	}

	out := make([]usecase.FeedEvent, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		event, ok := normalizeEventItem(item)
		if !ok {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: score feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("api_token", c.token)

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := method + " " + path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, method, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isFeedCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFeedTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFeedTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusMethodNotAllowed:
				return nil, fmt.Errorf("%w: method=%s status=405", errVerbRejected, method)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errFeedTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "feed request failed",
		"url", redactAPIURL(fullURL),
		"curl", buildCurlPreview(method, fullURL),
		"error", lastErr,
	)
	return nil, lastErr
}

func normalizeEventItem(item eventItem) (usecase.FeedEvent, bool) {
	home := strings.TrimSpace(item.HomeName)
	away := strings.TrimSpace(item.AwayName)
	if home == "" || away == "" {
		return usecase.FeedEvent{}, false
	}

	eventDate := parseProviderDateTime(item.EventDate)
	if eventDate == nil {
		return usecase.FeedEvent{}, false
	}

	return usecase.FeedEvent{
		HomeName:  home,
		AwayName:  away,
		HomeGoals: item.HomeScore,
		AwayGoals: item.AwayScore,
		Status:    usecase.NormalizeFeedStatus(item.Status),
		EventDate: *eventDate,
	}, true
}

// dedupeEvents collapses the same pairing reported by multiple sources. The
// terminal report wins, then the most recent one; the output order is fixed so
// two identical fetches reconcile identically.
func dedupeEvents(events []usecase.FeedEvent) []usecase.FeedEvent {
	byKey := make(map[string]usecase.FeedEvent, len(events))
	for _, event := range events {
		key := strings.ToLower(event.HomeName) + "|" + strings.ToLower(event.AwayName) + "|" + event.EventDate.UTC().Format(providerDateOnly)
		existing, exists := byKey[key]
		if exists && !shouldReplaceEvent(existing, event) {
			continue
		}
		byKey[key] = event
	}

	out := make([]usecase.FeedEvent, 0, len(byKey))
	for _, event := range byKey {
		out = append(out, event)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		if out[i].HomeName != out[j].HomeName {
			return out[i].HomeName < out[j].HomeName
		}
		return out[i].AwayName < out[j].AwayName
	})
	return out
}

func shouldReplaceEvent(existing, candidate usecase.FeedEvent) bool {
	existingFinished := usecase.IsFinishedFeedStatus(existing.Status)
	candidateFinished := usecase.IsFinishedFeedStatus(candidate.Status)
	if existingFinished != candidateFinished {
		return candidateFinished
	}
	return candidate.EventDate.After(existing.EventDate)
}

func parseProviderDateTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		providerDateOnly,
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
}

func isFeedCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("api_token") {
		query.Set("api_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
