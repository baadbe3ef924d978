// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package devserver implements the static development server used for legacy
// project trees that have no framework dev server of their own. It serves a
// single directory, optionally injecting a livereload client into HTML
// responses and broadcasting reload events to subscribed browsers when files
// under the directory change.
package devserver

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

const (
	// livereloadSocketPath is the websocket endpoint browsers subscribe to
	// for reload events.
	livereloadSocketPath = "/__gantry/livereload"
	// livereloadScriptPath serves the client script referenced by the tag
	// injected into HTML responses.
	livereloadScriptPath = "/__gantry/livereload.js"
)

//go:embed livereload.js
var livereloadScript []byte

// Options configures a dev server instance.
type Options struct {
	// Root is the directory served as the site root.
	Root string
	// Host is the interface to bind. Empty binds all interfaces.
	Host string
	// Port to listen on. Zero picks a free port.
	Port int
	// LiveReload enables script injection and the reload websocket.
	LiveReload bool
	// Writer receives the changed-file listings printed before each reload.
	// Defaults to os.Stdout.
	Writer io.Writer
	// Clock drives the reload debounce. Defaults to the wall clock.
	Clock clock.Clock
}

// Server is a static file server over a single directory.
type Server struct {
	options  Options
	listener net.Listener
	server   *http.Server
	reloader *reloader
}

func New(options Options) *Server {
	if options.Writer == nil {
		options.Writer = os.Stdout
	}
	if options.Clock == nil {
		options.Clock = clock.New()
	}

	return &Server{options: options}
}

// Start binds the configured address and begins serving in the background.
// The returned error covers binding and watcher setup only; failures after
// startup are logged.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(s.options.Host, strconv.Itoa(s.options.Port)))
	if err != nil {
		return fmt.Errorf("failed to bind dev server address: %w", err)
	}
	s.listener = listener

	mux := http.NewServeMux()

	if s.options.LiveReload {
		reloader, err := startReloader(ctx, s.options.Root, s.options.Clock, s.options.Writer)
		if err != nil {
			_ = listener.Close()
			return err
		}
		s.reloader = reloader

		mux.HandleFunc(livereloadSocketPath, reloader.handleSocket)
		mux.HandleFunc(livereloadScriptPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
			_, _ = w.Write(livereloadScript)
		})
	}

	mux.HandleFunc("/", s.handleStatic)

	s.server = &http.Server{
		ReadHeaderTimeout: 1 * time.Second,
		Handler:           mux,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("dev server error: %v", err)
		}
	}()

	return nil
}

// Addr returns the address the server is listening on. Only valid after a
// successful Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Stop shuts the server down and releases the file watcher.
func (s *Server) Stop(ctx context.Context) error {
	var result error

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			result = multierr.Append(result, err)
		}
	}

	if s.reloader != nil {
		if err := s.reloader.stop(); err != nil {
			result = multierr.Append(result, err)
		}
	}

	return result
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := filepath.Join(s.options.Root, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && info.IsDir() {
		name = filepath.Join(name, "index.html")
	}

	if s.options.LiveReload && strings.HasSuffix(name, ".html") {
		s.serveInjected(w, r, name)
		return
	}

	http.ServeFile(w, r, name)
}

// serveInjected writes an HTML file with the livereload client tag added.
func (s *Server) serveInjected(w http.ResponseWriter, r *http.Request, name string) {
	contents, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(injectLivereload(contents))
}

var livereloadTag = []byte(`<script src="` + livereloadScriptPath + `" async></script>`)

// injectLivereload adds the livereload client tag to an HTML document,
// immediately before the closing body tag when one exists.
func injectLivereload(contents []byte) []byte {
	result := make([]byte, 0, len(contents)+len(livereloadTag)+1)

	idx := lastIndexFold(contents, []byte("</body>"))
	if idx < 0 {
		result = append(result, contents...)
		result = append(result, '\n')
		return append(result, livereloadTag...)
	}

	result = append(result, contents[:idx]...)
	result = append(result, livereloadTag...)
	result = append(result, '\n')
	return append(result, contents[idx:]...)
}

func lastIndexFold(s, substr []byte) int {
	for i := len(s) - len(substr); i >= 0; i-- {
		if bytes.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}

	return -1
}
