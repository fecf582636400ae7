package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/csvquiz/internal/quiz"
)

func serveBank(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		location string
		wantHTTP bool
	}{
		{"http://example.com/questions.csv", true},
		{"HTTPS://example.com/questions.csv", true},
		{"questions.csv", false},
		{"/srv/bank/questions.csv", false},
	}
	for _, tt := range tests {
		src := NewSource(tt.location, nil)
		_, isHTTP := src.(*HTTPSource)
		assert.Equal(t, tt.wantHTTP, isHTTP, tt.location)
		assert.Equal(t, tt.location, src.String())
	}
}

func TestHTTPSource_OK(t *testing.T) {
	srv := serveBank(t, http.StatusOK, sampleBank)

	l := New(NewHTTPSource(srv.URL, nil), WithShuffler(quiz.NoShuffle))
	qs, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Paris", qs[0].Correct)
}

func TestHTTPSource_NotFound(t *testing.T) {
	srv := serveBank(t, http.StatusNotFound, "not found")

	qs, err := New(NewHTTPSource(srv.URL, nil)).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, qs)
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := serveBank(t, http.StatusOK, sampleBank)
	url := srv.URL
	srv.Close()

	_, err := New(NewHTTPSource(url, nil)).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPSource_Unparsable(t *testing.T) {
	srv := serveBank(t, http.StatusOK, "<html><body>oops</body></html>")

	_, err := New(NewHTTPSource(srv.URL, nil)).Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleBank), 0o644))

	qs, err := New(FileSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := New(FileSource{Path: filepath.Join(t.TempDir(), "nope.csv")}).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FileSource{Path: "questions.csv"}.Open(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoad_Shuffles(t *testing.T) {
	srv := serveBank(t, http.StatusOK, sampleBank)
	called := false
	reverse := func(qs []quiz.Question) {
		called = true
		qs[0], qs[1] = qs[1], qs[0]
	}

	qs, err := New(NewHTTPSource(srv.URL, nil), WithShuffler(reverse)).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "42", qs[0].Correct)
}

func TestLoad_LogsFailureOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := serveBank(t, http.StatusNotFound, "")

	_, err := New(NewHTTPSource(srv.URL, nil), WithLogger(zap.New(core))).Load(context.Background())
	require.Error(t, err)

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, srv.URL, entries[0].ContextMap()["source"])
}

func TestLoad_EmptyBankIsNotAnError(t *testing.T) {
	srv := serveBank(t, http.StatusOK, "Question,Option 1,Option 2,Option 3,Option 4,Correct Answer\n")

	qs, err := New(NewHTTPSource(srv.URL, nil)).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, qs)
}
