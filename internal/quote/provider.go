package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/mariechen/ticked/internal/domain"
)

// Quote is a single quotable line with attribution.
type Quote struct {
	Text   string
	Author string
}

// Result is a quote resolved for display, tagged with the tone it was
// requested under and where it came from.
type Result struct {
	Quote
	Tone      domain.Tone
	Source    string
	FetchedAt time.Time
}

const (
	SourceZenQuotes = "zenquotes"
	SourceFallback  = "fallback"
)

// ToneFor selects the quote tone for a moment in the day. Completing the
// last open task wins over everything else.
func ToneFor(timeOfDay domain.TimeOfDay, justCompletedAll bool) domain.Tone {
	if justCompletedAll {
		return domain.ToneCelebratory
	}
	if timeOfDay == domain.TimeEvening || timeOfDay == domain.TimeNight {
		return domain.ToneReflective
	}
	return domain.ToneMotivational
}

// Provider resolves a quote for a tone. Implementations must always
// return a usable quote; remote failures degrade to a local fallback.
type Provider interface {
	Fetch(ctx context.Context, tone domain.Tone) Result
}

// zenQuotesProvider implements Provider against the ZenQuotes HTTP API.
type zenQuotesProvider struct {
	cfg      Config
	http     *http.Client
	observer Observer
	now      func() time.Time
	pick     func(n int) int
}

// NewProvider creates a Provider that fetches from the configured
// endpoint and falls back to the built-in table on any failure.
func NewProvider(cfg Config, observer Observer) Provider {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &zenQuotesProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
		now:      time.Now,
		pick:     rand.IntN,
	}
}

// zenQuoteEntry is one element of the JSON array returned by the API.
// ZenQuotes uses the short q/a keys; the long forms are accepted for
// compatible mirrors.
type zenQuoteEntry struct {
	Q          string `json:"q"`
	A          string `json:"a"`
	QuoteField string `json:"quote"`
	AuthorName string `json:"author"`
}

func (e zenQuoteEntry) text() string {
	if e.Q != "" {
		return e.Q
	}
	return e.QuoteField
}

func (e zenQuoteEntry) author() string {
	if e.A != "" {
		return e.A
	}
	if e.AuthorName != "" {
		return e.AuthorName
	}
	return "Unknown"
}

func (p *zenQuotesProvider) Fetch(ctx context.Context, tone domain.Tone) Result {
	start := p.now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	q, err := p.doRequest(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		}
		p.observer.OnFetchComplete(FetchEvent{
			Tone:      tone,
			Source:    SourceFallback,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return Result{
			Quote:     fallbackFor(tone, p.pick),
			Tone:      tone,
			Source:    SourceFallback,
			FetchedAt: p.now(),
		}
	}

	p.observer.OnFetchComplete(FetchEvent{
		Tone:      tone,
		Source:    SourceZenQuotes,
		LatencyMs: latency,
		Success:   true,
	})
	return Result{
		Quote:     q,
		Tone:      tone,
		Source:    SourceZenQuotes,
		FetchedAt: p.now(),
	}
}

func (p *zenQuotesProvider) doRequest(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Endpoint, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return Quote{}, ErrUnavailable
		}
		return Quote{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	var entries []zenQuoteEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(entries) == 0 || entries[0].text() == "" {
		return Quote{}, ErrMalformed
	}

	return Quote{Text: entries[0].text(), Author: entries[0].author()}, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "unknown"
	}
}
