package main

import (
	"context"
	"errors"
	"html"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/fragment"
	"github.com/goliatone/go-formfield/pkg/ui"
)

func newServeCmd() *cobra.Command {
	var (
		flags  rendererFlags
		source string
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of a field document.",
		Long:  "serve re-reads the document on every request so edits show up on reload.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer, err := flags.renderer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              addr,
				Handler:           newPreviewRouter(renderer, func() (*fragment.Document, error) { return fragment.LoadFile(source) }),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("preview listening", "addr", addr, "file", source)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Warn("shutdown", "err", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "file", "f", "", "field document (YAML or JSON)")
	cmd.Flags().StringVar(&addr, "addr", envDefault(envAddr, ":8383"), "listen address")
	_ = cmd.MarkFlagRequired("file")
	flags.bind(cmd)
	return cmd
}

func newPreviewRouter(renderer *ui.Renderer, load func() (*fragment.Document, error)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		doc, err := load()
		if err != nil {
			log.Error("load document", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		body, err := doc.Render(renderer)
		if err != nil {
			log.Error("render document", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(previewPage(doc.Title, body)))
		log.Debug("preview rendered", "path", req.URL.Path, "groups", len(doc.Groups))
	})

	return r
}

func previewPage(title, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "formfield preview"
	}

	var builder strings.Builder
	builder.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>")
	builder.WriteString(html.EscapeString(title))
	builder.WriteString("</title>\n</head>\n<body>\n<form novalidate>\n")
	builder.WriteString(body)
	builder.WriteString("</form>\n</body>\n</html>\n")
	return builder.String()
}
