package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser playground",
		Long: `Serve a playground directory (index.html and main.wasm) along with Go's wasm_exec.js.

Build the playground first:
  GOOS=js GOARCH=wasm go build -o examples/browser-collapse/main.wasm ./examples/browser-collapse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			wasmExec, err := wasmExecPath(ctx, a.v.GetString("wasm-exec"))
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              a.v.GetString("addr"),
				Handler:           newHandler(a.v.GetString("dir"), wasmExec, a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			return listen(ctx, srv, a.logger)
		},
	}

	cmd.Flags().String("addr", "localhost:8080", "Address to listen on")
	cmd.Flags().String("dir", filepath.Join("examples", "browser-collapse"), "Playground directory")
	cmd.Flags().String("wasm-exec", "", "Path to wasm_exec.js (default: $GOROOT/lib/wasm/wasm_exec.js)")

	return cmd
}

// wasmExecPath returns path when set, otherwise the wasm_exec.js shipped with
// the Go toolchain found through $GOROOT or `go env GOROOT`.
func wasmExecPath(ctx context.Context, path string) (string, error) {
	if path != "" {
		return path, nil
	}

	goroot := os.Getenv("GOROOT")
	if goroot == "" {
		out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
		if err != nil {
			return "", fmt.Errorf("locating wasm_exec.js (set --wasm-exec): %w", err)
		}
		goroot = strings.TrimSpace(string(out))
	}

	return filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"), nil
}

func listen(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errs := make(chan error, 1)
	go func() {
		logger.Info("serving playground", zap.String("addr", srv.Addr))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving playground: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}

func newHandler(dir, wasmExec string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.Warn("writing health response", zap.Error(err))
		}
	})

	r.Get("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
		http.ServeFile(w, r, wasmExec)
	})

	r.Handle("/*", http.FileServer(http.Dir(dir)))

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			logger.Debug("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
