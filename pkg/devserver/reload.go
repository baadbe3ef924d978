// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package devserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/gantryhq/gantry/pkg/output"
	"github.com/gorilla/websocket"
)

// reloadDebounce is the quiet period after the last file event before a
// reload is broadcast. Editors emit bursts of events for a single save.
const reloadDebounce = 100 * time.Millisecond

// upgrader is the websocket.Upgrader used for livereload subscriptions.
var upgrader = websocket.Upgrader{}

type fileChanges struct {
	created  map[string]bool
	modified map[string]bool
	deleted  map[string]bool
}

func newFileChanges() *fileChanges {
	return &fileChanges{
		created:  make(map[string]bool),
		modified: make(map[string]bool),
		deleted:  make(map[string]bool),
	}
}

// record folds a watcher event into the pending change set. A file created
// and removed within the same burst cancels out.
func (c *fileChanges) record(event fsnotify.Event) {
	name := event.Name
	switch {
	case event.Has(fsnotify.Create):
		c.created[name] = true
	case event.Has(fsnotify.Write) || event.Has(fsnotify.Rename):
		if !c.created[name] && !c.deleted[name] {
			c.modified[name] = true
		}
	case event.Has(fsnotify.Remove):
		if c.created[name] {
			delete(c.created, name)
		} else {
			c.deleted[name] = true
			delete(c.modified, name)
		}
	}
}

func (c *fileChanges) empty() bool {
	return len(c.created) == 0 && len(c.modified) == 0 && len(c.deleted) == 0
}

func (c *fileChanges) print(w io.Writer) {
	fmt.Fprintln(w, output.WithGrayFormat("\n| Files changed:"))

	for file := range c.created {
		fmt.Fprintln(w, output.WithGrayFormat("| "), color.GreenString("+ Created "), file)
	}

	for file := range c.modified {
		fmt.Fprintln(w, output.WithGrayFormat("| "), color.YellowString(output.WithUnderline("+")), color.YellowString("Modified "), file)
	}

	for file := range c.deleted {
		fmt.Fprintln(w, output.WithGrayFormat("| "), color.RedString("- Deleted "), file)
	}

	fmt.Fprintln(w, "")
}

// reloader watches a directory tree and notifies subscribed browsers once a
// burst of file events settles.
type reloader struct {
	watcher  *fsnotify.Watcher
	clk      clock.Clock
	debounce time.Duration
	writer   io.Writer

	mu      sync.Mutex
	conns   map[*websocket.Conn]bool
	changes *fileChanges

	done chan struct{}
}

func startReloader(ctx context.Context, root string, clk clock.Clock, writer io.Writer) (*reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watchRecursive(root, watcher); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watcher failed: %w", err)
	}

	r := &reloader{
		watcher:  watcher,
		clk:      clk,
		debounce: reloadDebounce,
		writer:   writer,
		conns:    make(map[*websocket.Conn]bool),
		changes:  newFileChanges(),
		done:     make(chan struct{}),
	}

	go r.run(ctx)

	return r, nil
}

func watchRecursive(root string, watcher *fsnotify.Watcher) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			err = watcher.Add(path)
			if err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		}

		return nil
	})
}

func (r *reloader) run(ctx context.Context) {
	var timer *clock.Timer
	var fire <-chan time.Time

	for {
		select {
		case event := <-r.watcher.Events:
			r.mu.Lock()
			r.changes.record(event)
			r.mu.Unlock()

			if timer == nil {
				timer = r.clk.Timer(r.debounce)
				fire = timer.C
			} else {
				timer.Reset(r.debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			r.flush()
		case err := <-r.watcher.Errors:
			log.Printf("watcher error: %v", err)
		case <-r.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// flush prints the settled change set and broadcasts a reload. Nothing is
// sent when only uninteresting events arrived during the burst.
func (r *reloader) flush() {
	r.mu.Lock()
	changes := r.changes
	r.changes = newFileChanges()

	if changes.empty() {
		r.mu.Unlock()
		return
	}

	conns := make([]*websocket.Conn, 0, len(r.conns))
	for conn := range r.conns {
		conns = append(conns, conn)
	}
	r.mu.Unlock()

	changes.print(r.writer)

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			log.Printf("livereload send failed: %v", err)
			r.drop(conn)
		}
	}
}

// handleSocket upgrades a livereload subscription request.
func (r *reloader) handleSocket(w http.ResponseWriter, req *http.Request) {
	c, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}

	r.mu.Lock()
	r.conns[c] = true
	r.mu.Unlock()

	// Drain the connection so close frames are processed; the server never
	// expects client messages.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				r.drop(c)
				return
			}
		}
	}()
}

func (r *reloader) drop(conn *websocket.Conn) {
	r.mu.Lock()
	if _, ok := r.conns[conn]; ok {
		delete(r.conns, conn)
		_ = conn.Close()
	}
	r.mu.Unlock()
}

func (r *reloader) stop() error {
	close(r.done)

	err := r.watcher.Close()

	r.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(r.conns))
	for conn := range r.conns {
		conns = append(conns, conn)
	}
	r.conns = make(map[*websocket.Conn]bool)
	r.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}

	return err
}
