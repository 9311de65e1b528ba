/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package telemetry reports anonymous CLI usage (template generations,
// exports) and uploads crash reports. Everything is opt-in and endpoint-
// gated: without RCV_TELEMETRY_OPT_IN and a URL, every call is a no-op.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	applog "reportcanvas/internal/log"
	"reportcanvas/internal/version"
)

// Config is read from the environment:
//   - RCV_TELEMETRY_OPT_IN: "1", "true", "yes", "on" to enable events
//   - RCV_TELEMETRY_URL: endpoint for JSON event POSTs
//   - RCV_CRASH_UPLOAD_URL: endpoint for plain-text crash reports
//   - RCV_TELEMETRY_TIMEOUT_MS: request timeout, default 1500ms
type Config struct {
	OptIn     bool
	EventsURL string
	CrashURL  string
	Timeout   time.Duration
}

const defaultTimeout = 1500 * time.Millisecond

// FromEnv builds the telemetry config from environment variables.
func FromEnv() Config {
	cfg := Config{
		OptIn:     optedIn(os.Getenv("RCV_TELEMETRY_OPT_IN")),
		EventsURL: strings.TrimSpace(os.Getenv("RCV_TELEMETRY_URL")),
		CrashURL:  strings.TrimSpace(os.Getenv("RCV_CRASH_UPLOAD_URL")),
		Timeout:   defaultTimeout,
	}
	if ms := strings.TrimSpace(os.Getenv("RCV_TELEMETRY_TIMEOUT_MS")); ms != "" {
		if d, err := time.ParseDuration(ms + "ms"); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

func optedIn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Client sends events asynchronously over a bounded queue; a full queue or a
// failed POST drops the event. Telemetry must never block or fail a command.
type Client struct {
	cfg    Config
	log    *slog.Logger
	httpc  *http.Client
	queue  chan map[string]any
	closed chan struct{}
	once   sync.Once
}

// New constructs a client and starts its sender.
func New(cfg Config) *Client {
	c := &Client{
		cfg:    cfg,
		log:    applog.WithComponent("telemetry"),
		httpc:  &http.Client{Timeout: cfg.Timeout},
		queue:  make(chan map[string]any, 64),
		closed: make(chan struct{}),
	}
	go c.run()
	return c
}

// Enabled reports whether events will actually be sent.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.OptIn && c.cfg.EventsURL != ""
}

// Event queues a usage event. Props must not carry user content; callers
// send ids and flags only.
func (c *Client) Event(name string, props map[string]any) {
	if !c.Enabled() || name == "" {
		return
	}
	payload := map[string]any{
		"app":     "reportcanvas",
		"name":    name,
		"ts":      time.Now().UTC().Format(time.RFC3339Nano),
		"version": version.String(),
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
	}
	for k, v := range props {
		payload[k] = v
	}
	select {
	case c.queue <- payload:
	default:
		// queue full, drop
	}
}

// Flush waits briefly for queued events to drain before the process exits.
func (c *Client) Flush(ctx context.Context) {
	deadline := time.Now().Add(500 * time.Millisecond)
	for len(c.queue) > 0 && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-time.After(25 * time.Millisecond):
		}
	}
}

// Close stops the sender.
func (c *Client) Close() {
	c.once.Do(func() { close(c.closed) })
}

func (c *Client) run() {
	for {
		select {
		case <-c.closed:
			return
		case payload := <-c.queue:
			c.post(payload)
		}
	}
}

func (c *Client) post(payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	req, err := http.NewRequest(http.MethodPost, c.cfg.EventsURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug("event send failed", slog.Any("err", err))
		return
	}
	_ = resp.Body.Close()
}

// UploadCrash posts a serialized crash report. It blocks until the request
// finishes: the crash handler exits the process right after, so a background
// send would be lost.
func (c *Client) UploadCrash(report []byte) {
	if c == nil || !c.cfg.OptIn || c.cfg.CrashURL == "" {
		return
	}
	req, err := http.NewRequest(http.MethodPost, c.cfg.CrashURL, bytes.NewReader(report))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug("crash upload failed", slog.Any("err", err))
		return
	}
	_ = resp.Body.Close()
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

func initDefault() {
	defaultOnce.Do(func() {
		if defaultClient == nil {
			defaultClient = New(FromEnv())
		}
	})
}

// NewDefault installs cfg as the package-level client.
func NewDefault(cfg Config) {
	defaultClient = New(cfg)
}

// Enabled reports whether the package-level client sends events.
func Enabled() bool {
	initDefault()
	return defaultClient.Enabled()
}

// Event queues a usage event on the package-level client.
func Event(name string, props map[string]any) {
	initDefault()
	defaultClient.Event(name, props)
}

// UploadCrash sends a crash report through the package-level client.
func UploadCrash(report []byte) {
	initDefault()
	defaultClient.UploadCrash(report)
}
