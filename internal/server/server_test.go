package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"anagram/internal/dictionary"
	"anagram/internal/logger"
	"anagram/internal/mocks"
	"anagram/internal/server"
	"anagram/web"
)

func newServer(t *testing.T, opts ...server.Option) http.Handler {
	t.Helper()
	s, err := server.New(dictionary.NewMemory("act", "cat", "tac"), opts...)
	require.NoError(t, err)
	return s.Handler()
}

func get(h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLookup(t *testing.T) {
	h := newServer(t, server.WithFingerprint("1abe56bb6e1ab279cd0d"))

	rec := get(h, "/lookup?word=cat")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "1abe56bb6e1ab279cd0d", rec.Header().Get("X-Dictionary-Fingerprint"))
	require.Equal(t, `{"word":"cat","isAWord":true}`+"\n", rec.Body.String())

	rec = get(h, "/lookup?word=tca")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Equal(t, "tca", gjson.Get(body, "word").String())
	require.False(t, gjson.Get(body, "isAWord").Bool())

	rec = get(h, "/lookup?word=")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gjson.Get(rec.Body.String(), "word").Exists())
	require.False(t, gjson.Get(rec.Body.String(), "isAWord").Bool())

	rec = get(h, "/lookup?word=a%20b%26c")
	require.Equal(t, "a b&c", gjson.Get(rec.Body.String(), "word").String())
}

func TestLookupMissingWord(t *testing.T) {
	rec := get(newServer(t), "/lookup")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupDictionaryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dict := mocks.NewMockDictionary(ctrl)
	dict.EXPECT().Contains(gomock.Any(), "cat").Return(false, errors.New("grep: exit status 2"))

	s, err := server.New(dict)
	require.NoError(t, err)

	rec := get(s.Handler(), "/lookup?word=cat")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "isAWord")
}

func TestHealthz(t *testing.T) {
	rec := get(newServer(t, server.WithFingerprint("abc")), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "SERVING", gjson.Get(rec.Body.String(), "status").String())
	require.Equal(t, "abc", gjson.Get(rec.Body.String(), "fingerprint").String())
}

func TestAssets(t *testing.T) {
	h := newServer(t, server.WithAssets(web.Assets))

	for _, tc := range []struct {
		path, contentType, contains string
	}{
		{"/", "text/html", `class="anagram-finder"`},
		{"/index.html", "text/html", `class="anagram-finder"`},
		{"/main.js", "text/javascript", "/lookup?word="},
		{"/style.css", "text/css", ".anagram-finder-output"},
	} {
		rec := get(h, tc.path)
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		require.Equal(t, tc.contentType, rec.Header().Get("Content-Type"), tc.path)
		require.Contains(t, rec.Body.String(), tc.contains, tc.path)
	}
}

func TestAssetReadFailure(t *testing.T) {
	h := newServer(t, server.WithAssets(fstest.MapFS{
		"index.html": {Data: []byte("<p>hi</p>")},
	}))

	rec := get(h, "/style.css")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Server error: ENOENT", rec.Body.String())

	rec = get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestNotFound(t *testing.T) {
	h := newServer(t, server.WithAssets(web.Assets))
	for _, path := range []string{"/nope", "/index.htm", "/lookup/cat", "/web.go"} {
		rec := get(h, path)
		require.Equal(t, http.StatusNotFound, rec.Code, path)
		require.Equal(t, "File not found.", strings.TrimSpace(rec.Body.String()), path)
	}
}

func TestRequestIDAndAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := newServer(t, server.WithLogger(&logger.ZapLogger{Logger: zap.New(core)}))

	rec := get(h, "/lookup?word=cat")
	id := rec.Header().Get("X-Request-Id")
	require.Len(t, id, 36)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/lookup", fields["path"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.Equal(t, id, fields["request_id"])
}

func TestCORS(t *testing.T) {
	h := newServer(t, server.WithCORSAllowedOrigins([]string{"http://example.test"}))

	rec := get(h, "/lookup?word=cat", "Origin", "http://example.test")
	require.Equal(t, "http://example.test", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(h, "/lookup?word=cat", "Origin", "http://elsewhere.test")
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRequiresDictionary(t *testing.T) {
	_, err := server.New(nil)
	require.Error(t, err)
}

func TestServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ml, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	metrics := server.MetricsEndpoint("")
	metrics.Listener = ml

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, logger.NewNoopLogger(),
			server.Endpoint{Name: "http", Handler: newServer(t), Listener: l},
			metrics,
		)
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + l.Addr().String() + "/lookup?word=act")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.True(t, gjson.GetBytes(body, "isAWord").Bool())

	resp, err = client.Get("http://" + ml.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Contains(t, string(body), "lookupd_http_requests_total")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestServeListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	err = server.Serve(context.Background(), logger.NewNoopLogger(),
		server.Endpoint{Name: "http", Addr: l.Addr().String(), Handler: http.NotFoundHandler()},
	)
	require.ErrorContains(t, err, "http server")
}
