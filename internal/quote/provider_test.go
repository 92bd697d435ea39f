package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariechen/ticked/internal/domain"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		name         string
		timeOfDay    domain.TimeOfDay
		completedAll bool
		want         domain.Tone
	}{
		{"morning", domain.TimeMorning, false, domain.ToneMotivational},
		{"afternoon", domain.TimeAfternoon, false, domain.ToneMotivational},
		{"evening", domain.TimeEvening, false, domain.ToneReflective},
		{"night", domain.TimeNight, false, domain.ToneReflective},
		{"completed all wins over morning", domain.TimeMorning, true, domain.ToneCelebratory},
		{"completed all wins over night", domain.TimeNight, true, domain.ToneCelebratory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToneFor(tt.timeOfDay, tt.completedAll))
		})
	}
}

func TestProvider_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"q":"Stay curious.","a":"Ada"}]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), NoopObserver{})
	res := p.Fetch(context.Background(), domain.ToneMotivational)

	assert.Equal(t, "Stay curious.", res.Text)
	assert.Equal(t, "Ada", res.Author)
	assert.Equal(t, domain.ToneMotivational, res.Tone)
	assert.Equal(t, SourceZenQuotes, res.Source)
	assert.False(t, res.FetchedAt.IsZero())
}

func TestProvider_Fetch_LongFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"quote":"Keep going.","author":"Grace"}]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), NoopObserver{})
	res := p.Fetch(context.Background(), domain.ToneMotivational)

	assert.Equal(t, "Keep going.", res.Text)
	assert.Equal(t, "Grace", res.Author)
	assert.Equal(t, SourceZenQuotes, res.Source)
}

func TestProvider_Fetch_MissingAuthorDefaultsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"q":"No name attached."}]`))
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), NoopObserver{})
	res := p.Fetch(context.Background(), domain.ToneMotivational)

	assert.Equal(t, "Unknown", res.Author)
	assert.Equal(t, SourceZenQuotes, res.Source)
}

func TestProvider_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	p := NewProvider(cfg, NoopObserver{})
	res := p.Fetch(context.Background(), domain.ToneReflective)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, domain.ToneReflective, res.Tone)
	assert.NotEmpty(t, res.Text)
	assert.NotEmpty(t, res.Author)
}

func TestProvider_Fetch_Unavailable(t *testing.T) {
	p := NewProvider(testConfig("http://127.0.0.1:1"), NoopObserver{}) // nothing listening

	res := p.Fetch(context.Background(), domain.ToneCelebratory)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, domain.ToneCelebratory, res.Tone)
	assert.NotEmpty(t, res.Text)
}

func TestProvider_Fetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewProvider(testConfig(srv.URL), NoopObserver{})
	res := p.Fetch(context.Background(), domain.ToneMotivational)

	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Text)
}

func TestProvider_Fetch_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"empty array", "[]"},
		{"object instead of array", `{"q":"stray"}`},
		{"entry without text", `[{"a":"Nobody"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewProvider(testConfig(srv.URL), NoopObserver{})
			res := p.Fetch(context.Background(), domain.ToneMotivational)

			assert.Equal(t, SourceFallback, res.Source)
			assert.NotEmpty(t, res.Text)
			assert.NotEmpty(t, res.Author)
		})
	}
}

func TestFallback_EveryToneHasEntries(t *testing.T) {
	for _, tone := range []domain.Tone{domain.ToneMotivational, domain.ToneReflective, domain.ToneCelebratory} {
		require.GreaterOrEqual(t, len(fallbackQuotes[tone]), 3, "tone %s", tone)
		for _, q := range fallbackQuotes[tone] {
			assert.NotEmpty(t, q.Text)
			assert.NotEmpty(t, q.Author)
		}
	}
}

func TestFallback_UnknownToneUsesMotivational(t *testing.T) {
	got := fallbackFor(domain.Tone("bogus"), func(n int) int { return 0 })
	assert.Equal(t, fallbackQuotes[domain.ToneMotivational][0], got)
}

func TestProvider_Fetch_ObserverRecordsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	var events []FetchEvent
	obs := observerFunc(func(e FetchEvent) { events = append(events, e) })

	p := NewProvider(testConfig(srv.URL), obs)
	p.Fetch(context.Background(), domain.ToneMotivational)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "malformed", events[0].ErrorCode)
	assert.Equal(t, SourceFallback, events[0].Source)
}

type observerFunc func(FetchEvent)

func (f observerFunc) OnFetchComplete(e FetchEvent) { f(e) }
