package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func get(t *testing.T, client *http.Client, url string) (int, string, http.Header) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body), resp.Header
}

func TestHandler(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>playground</h1>"), 0o644))
	wasmExec := filepath.Join(t.TempDir(), "wasm_exec.js")
	require.NoError(t, os.WriteFile(wasmExec, []byte("// go"), 0o644))

	core, logs := observer.New(zapcore.DebugLevel)
	srv := httptest.NewServer(newHandler(dir, wasmExec, zap.New(core)))
	defer srv.Close()

	client := srv.Client()

	status, body, _ := get(t, client, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)

	status, body, _ = get(t, client, srv.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "playground")

	status, body, header := get(t, client, srv.URL+"/wasm_exec.js")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "// go", body)
	assert.Equal(t, "text/javascript", header.Get("Content-Type"))

	status, _, _ = get(t, client, srv.URL+"/missing.wasm")
	assert.Equal(t, http.StatusNotFound, status)

	requests := logs.FilterMessage("request").All()
	require.Len(t, requests, 4)
	assert.Equal(t, "/missing.wasm", requests[3].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), requests[3].ContextMap()["status"])
	assert.Equal(t, int64(http.StatusOK), requests[0].ContextMap()["status"])
	assert.Equal(t, int64(2), requests[0].ContextMap()["bytes"])

	ids := map[any]bool{}
	for _, entry := range requests {
		id := entry.ContextMap()["request_id"]
		assert.NotEmpty(t, id)
		ids[id] = true
	}
	assert.Len(t, ids, 4, "each request gets its own id")
}

func TestHandlerRecovers(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.DebugLevel)
	handler := newHandler(t.TempDir(), "", zap.New(core))
	handler.(chi.Router).Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	srv := httptest.NewServer(handler)
	defer srv.Close()

	status, _, _ := get(t, srv.Client(), srv.URL+"/boom")
	assert.Equal(t, http.StatusInternalServerError, status)

	requests := logs.FilterMessage("request").All()
	require.Len(t, requests, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), requests[0].ContextMap()["status"])
}

func TestWasmExecPath(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path, err := wasmExecPath(context.Background(), "/srv/wasm_exec.js")
		require.NoError(t, err)
		assert.Equal(t, "/srv/wasm_exec.js", path)
	})

	t.Run("from GOROOT", func(t *testing.T) {
		goroot := t.TempDir()
		t.Setenv("GOROOT", goroot)

		path, err := wasmExecPath(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"), path)
	})
}

func TestListenShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- listen(ctx, srv, zap.NewNop()) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listen did not return after cancel")
	}
}
