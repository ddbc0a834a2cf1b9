// watcher.go reloads settings when the config file changes on disk.
//
// An fsnotify watcher observes the directory holding the config file, since
// editors often replace the file rather than write it in place. Events for
// the file are turned into configChangedMsg values by a background goroutine
// and handed to Bubble Tea through a channel that a tea.Cmd blocks on. The
// Cmd is re-issued after every delivered message so the listener stays alive
// for the lifetime of the program.
package app

import (
	"fmt"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/treykane/cli-assistant/internal/config"
)

// configChangedMsg carries a reloaded config, or the error from reloading it.
type configChangedMsg struct {
	cfg config.Config
	err error
}

// configWatchErrMsg reports an error from the watcher itself.
type configWatchErrMsg struct {
	err error
}

type configWatcher struct {
	fs     *fsnotify.Watcher
	path   string
	load   func(path string) (config.Config, error)
	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

// newConfigWatcher starts watching path and reloads it with load.
func newConfigWatcher(path string, load func(string) (config.Config, error)) (*configWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch config dir %q: %w", dir, err)
	}
	w := &configWatcher{
		fs:     fs,
		path:   filepath.Clean(path),
		load:   load,
		events: make(chan tea.Msg, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *configWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := w.load(w.path)
			w.send(configChangedMsg{cfg: cfg, err: err})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(configWatchErrMsg{err: err})
		}
	}
}

func (w *configWatcher) send(msg tea.Msg) {
	select {
	case w.events <- msg:
	case <-w.done:
	}
}

// next waits for the next watcher message.
func (w *configWatcher) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.events:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher goroutine and releases the fsnotify handle.
func (w *configWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// WatchConfig reloads settings whenever the file at path changes. It must be
// called before the program starts so Init can schedule the listener.
func (m *Model) WatchConfig(path string) error {
	w, err := newConfigWatcher(path, config.LoadPath)
	if err != nil {
		return err
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	m.watcher = w
	appLog.Debug("watching config", "path", path)
	return nil
}

// handleConfigChanged applies settings edited outside the app.
func (m *Model) handleConfigChanged(msg configChangedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.watcher != nil {
		cmd = m.watcher.next()
	}
	if msg.err != nil {
		m.setStatusError("Config reload failed", msg.err)
		return m, cmd
	}
	if msg.cfg == m.cfg {
		return m, cmd
	}
	m.applyConfig(msg.cfg)
	m.status = "Settings reloaded"
	return m, cmd
}

func (m *Model) handleConfigWatchErr(msg configWatchErrMsg) (tea.Model, tea.Cmd) {
	appLog.Warn("config watcher", "error", msg.err)
	if m.watcher == nil {
		return m, nil
	}
	return m, m.watcher.next()
}
