package lookup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"anagram/internal/domain"
	"anagram/internal/lookup"
	"anagram/internal/mocks"
)

func TestStub(t *testing.T) {
	res, err := lookup.Stub{}.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	require.Equal(t, domain.MembershipUnknown, res.Membership)
	require.False(t, res.IsAWord())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lookup.Stub{}.Lookup(ctx, "cat")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mocks.NewMockDictionary(ctrl)
	dict.EXPECT().Contains(gomock.Any(), "cat").Return(true, nil)
	dict.EXPECT().Contains(gomock.Any(), "tca").Return(false, nil)
	dict.EXPECT().Contains(gomock.Any(), "act").Return(false, errors.New("disk gone"))

	l, err := lookup.NewLocal(dict)
	require.NoError(t, err)

	res, err := l.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	require.Equal(t, domain.LookupResult{Word: "cat", Membership: domain.MembershipWord}, res)

	res, err = l.Lookup(context.Background(), "tca")
	require.NoError(t, err)
	require.Equal(t, domain.MembershipNonWord, res.Membership)

	_, err = l.Lookup(context.Background(), "act")
	require.ErrorContains(t, err, "disk gone")

	_, err = lookup.NewLocal(nil)
	require.Error(t, err)
}

// lookupServer answers like lookupd for the given words.
func lookupServer(t *testing.T, words ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	set := make(map[string]bool)
	for _, w := range words {
		set[w] = true
	}
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/lookup", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		word := r.URL.Query().Get("word")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.LookupResponse{Word: word, IsAWord: set[word]})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.HealthResponse{Status: "SERVING", Fingerprint: "abc"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPLookup(t *testing.T) {
	srv, hits := lookupServer(t, "cat", "a b&c")
	c := lookup.NewHTTP(srv.URL + "/")

	res, err := c.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	require.True(t, res.IsAWord())

	res, err = c.Lookup(context.Background(), "tca")
	require.NoError(t, err)
	require.Equal(t, domain.MembershipNonWord, res.Membership)

	res, err = c.Lookup(context.Background(), "a b&c")
	require.NoError(t, err)
	require.True(t, res.IsAWord(), "word must survive query escaping")

	require.EqualValues(t, 3, hits.Load())
}

func TestHTTPLookupStatusError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "grep exited with status 2", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := lookup.NewHTTP(srv.URL).Lookup(context.Background(), "cat")
	require.Error(t, err)
	require.True(t, lookup.IsStatus(err, http.StatusInternalServerError))
	require.ErrorContains(t, err, "grep exited with status 2")
	require.EqualValues(t, 1, hits.Load(), "no retries by default")
}

func TestHTTPLookupRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.LookupResponse{Word: "cat", IsAWord: true})
	}))
	t.Cleanup(srv.Close)

	res, err := lookup.NewHTTP(srv.URL, lookup.WithRetries(2)).Lookup(context.Background(), "cat")
	require.NoError(t, err)
	require.True(t, res.IsAWord())
	require.EqualValues(t, 3, hits.Load())
}

func TestHTTPLookupMismatchedWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.LookupResponse{Word: "dog", IsAWord: true})
	}))
	t.Cleanup(srv.Close)

	_, err := lookup.NewHTTP(srv.URL).Lookup(context.Background(), "cat")
	require.ErrorContains(t, err, `answer for "dog"`)
}

func TestHTTPLookupTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	_, err := lookup.NewHTTP(srv.URL, lookup.WithTimeout(50*time.Millisecond)).Lookup(context.Background(), "cat")
	require.Error(t, err)
}

func TestHTTPPing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.HealthResponse{Status: "SERVING", Fingerprint: "abc"})
	}))
	t.Cleanup(srv.Close)

	c := lookup.NewHTTP(srv.URL)
	require.NoError(t, c.Ping(context.Background(), 10*time.Second))
	require.EqualValues(t, 3, hits.Load())

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc", h.Fingerprint)
}

func TestHTTPPingGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.HealthResponse{Status: "NOT_SERVING"})
	}))
	t.Cleanup(srv.Close)

	err := lookup.NewHTTP(srv.URL).Ping(context.Background(), 300*time.Millisecond)
	require.ErrorContains(t, err, "not ready")
}

func TestCached(t *testing.T) {
	var calls atomic.Int32
	delegate := lookup.Func(func(_ context.Context, word string) (domain.LookupResult, error) {
		calls.Add(1)
		switch word {
		case "cat":
			return domain.LookupResult{Word: word, Membership: domain.MembershipWord}, nil
		case "boom":
			return domain.LookupResult{}, errors.New("boom")
		default:
			return domain.LookupResult{Word: word, Membership: domain.MembershipUnknown}, nil
		}
	})

	c, err := lookup.NewCached(delegate, 0)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	for range 3 {
		res, err := c.Lookup(context.Background(), "cat")
		require.NoError(t, err)
		require.True(t, res.IsAWord())
		require.Equal(t, "cat", res.Word)
	}
	require.EqualValues(t, 1, calls.Load())

	for range 2 {
		_, err = c.Lookup(context.Background(), "xyz")
		require.NoError(t, err)
	}
	require.EqualValues(t, 3, calls.Load(), "unknown answers are not cached")

	for range 2 {
		_, err = c.Lookup(context.Background(), "boom")
		require.Error(t, err)
	}
	require.EqualValues(t, 5, calls.Load(), "errors are not cached")
}
