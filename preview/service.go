// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package preview serves live renders of PDC files to connected clients.
// It watches a directory and pushes a re-rendered PNG or GIF to every
// websocket client whenever a file changes. Each push is a text frame
// announcing the file ("i<name>" for images, "s<name>" for sequences,
// "e<name>: <error>" for invalid files) followed, on success, by one
// binary frame carrying the encoded raster.
package preview

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/pebble-dev/pdc-tools/pdc"
	"github.com/pebble-dev/pdc-tools/raster"
)

const writeTimeout = 10 * time.Second

type Service struct {
	cfg Config

	mu      sync.Mutex
	clients map[uuid.UUID]*client
}

// client pairs a connection with a write lock. The lock is held across an
// announcement and its payload so concurrent pushes to the same connection
// cannot interleave the two frames.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg:     cfg,
		clients: make(map[uuid.UUID]*client),
	}
}

// ListenAndServe watches the configured directory and serves websocket
// clients on /ws until the listener fails.
func (s *Service) ListenAndServe(addr string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(s.cfg.WatchDir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", s.cfg.WatchDir, err)
	}
	go s.watch(watcher)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	return http.ListenAndServe(addr, mux)
}

func (s *Service) handleWebsocket(rw http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(rw, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("websocket accept failed: %v", err)
		return
	}
	id := uuid.New()
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[id] = c
	s.mu.Unlock()
	log.Printf("client %s connected", id)

	// Push a render of everything already in the directory, then hold the
	// connection open until the client goes away.
	s.pushExisting(r.Context(), c)
	ctx := conn.CloseRead(context.Background())
	<-ctx.Done()

	s.mu.Lock()
	delete(s.clients, id)
	s.mu.Unlock()
	log.Printf("client %s disconnected", id)
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Service) pushExisting(ctx context.Context, c *client) {
	entries, err := os.ReadDir(s.cfg.WatchDir)
	if err != nil {
		log.Printf("failed to list %q: %v", s.cfg.WatchDir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !isPDCFile(entry.Name()) {
			continue
		}
		announce, payload := s.renderFile(filepath.Join(s.cfg.WatchDir, entry.Name()))
		sendRender(ctx, c, announce, payload)
	}
}

func (s *Service) watch(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !isPDCFile(event.Name) {
				continue
			}
			announce, payload := s.renderFile(event.Name)
			s.broadcast(announce, payload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// renderFile validates and renders one file, returning the announcement
// text frame and the encoded raster. An invalid file yields an error
// announcement and a nil payload; it is never partially rendered.
func (s *Service) renderFile(path string) (string, []byte) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("e%s: %v", name, err), nil
	}
	if err := pdc.ValidateResource(data); err != nil {
		return fmt.Sprintf("e%s: %v", name, err), nil
	}
	switch pdc.KindOf(data) {
	case pdc.KindImage:
		image, err := pdc.ParseImageFile(bytes.NewReader(data))
		if err != nil {
			return fmt.Sprintf("e%s: %v", name, err), nil
		}
		rendered, err := raster.RenderImage(image, s.cfg.Scale)
		if err != nil {
			return fmt.Sprintf("e%s: %v", name, err), nil
		}
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, rendered); err != nil {
			return fmt.Sprintf("e%s: %v", name, err), nil
		}
		return "i" + name, buf.Bytes()
	case pdc.KindSequence:
		seq, err := pdc.ParseImageSequence(bytes.NewReader(data))
		if err != nil {
			return fmt.Sprintf("e%s: %v", name, err), nil
		}
		buf := new(bytes.Buffer)
		if err := raster.EncodeSequenceGIF(buf, seq, s.cfg.Scale); err != nil {
			return fmt.Sprintf("e%s: %v", name, err), nil
		}
		return "s" + name, buf.Bytes()
	}
	return fmt.Sprintf("e%s: not a PDC file", name), nil
}

func (s *Service) broadcast(announce string, payload []byte) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()
	for _, c := range clients {
		sendRender(context.Background(), c, announce, payload)
	}
}

func sendRender(ctx context.Context, c *client, announce string, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.Write(ctx, websocket.MessageText, []byte(announce)); err != nil {
		log.Printf("failed to write announcement: %v", err)
		return
	}
	if payload == nil {
		return
	}
	if err := c.conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
		log.Printf("failed to write render: %v", err)
	}
}

func isPDCFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdc", ".pdci", ".pdcs":
		return true
	}
	return false
}
