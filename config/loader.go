package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

type decodeFunc func(data []byte, cfg *Config) error

var decoders = map[string]decodeFunc{
	".toml": func(data []byte, cfg *Config) error {
		_, err := toml.Decode(string(data), cfg)
		return err
	},
	".json": func(data []byte, cfg *Config) error { return json.Unmarshal(data, cfg) },
	".yaml": func(data []byte, cfg *Config) error { return yaml.Unmarshal(data, cfg) },
	".yml":  func(data []byte, cfg *Config) error { return yaml.Unmarshal(data, cfg) },
}

// guessOrder is tried for files without a known extension.
var guessOrder = []string{".toml", ".json", ".yaml"}

// Loader loads the config file and reloads it when it changes.
//
// OnChange callbacks run on the watcher goroutine. Front ends that own
// single-threaded state must hand the config over to their event loop.
type Loader struct {
	path string

	mu       sync.Mutex
	onChange []func(*Config)

	watcher *fsnotify.Watcher
	errs    chan error
	done    chan struct{}
	stop    sync.Once
}

// NewLoader creates a loader for path, or for ConfigPath when path is empty.
func NewLoader(path string) *Loader {
	if path == "" {
		path = ConfigPath()
	}
	return &Loader{
		path: path,
		errs: make(chan error, 1),
		done: make(chan struct{}),
	}
}

// Path returns the watched file.
func (l *Loader) Path() string {
	return l.path
}

// Load reads, parses and validates the file.
func (l *Loader) Load() (*Config, error) {
	return Load(l.path)
}

// Watch reloads the file whenever it is written or replaced. An invalid
// file is reported on Errors and no callback runs.
func (l *Loader) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Editors that save by rename replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}
	l.watcher = watcher

	go l.run()
	return nil
}

func (l *Loader) run() {
	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()
	defer debounce.Stop()

	name := filepath.Base(l.path)
	for {
		select {
		case <-l.done:
			return
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) == name && ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				debounce.Reset(reloadDebounce)
			}
		case <-debounce.C:
			l.reload()
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.report(err)
		}
	}
}

func (l *Loader) reload() {
	cfg, err := Load(l.path)
	if err != nil {
		l.report(fmt.Errorf("reload config: %w", err))
		return
	}

	l.mu.Lock()
	callbacks := append([]func(*Config){}, l.onChange...)
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg.Clone())
	}
}

// report drops the error when the previous one has not been read yet.
func (l *Loader) report(err error) {
	select {
	case l.errs <- err:
	default:
	}
}

// OnChange registers a callback for every successful reload.
func (l *Loader) OnChange(cb func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, cb)
}

// Errors delivers reload and watcher failures.
func (l *Loader) Errors() <-chan error {
	return l.errs
}

// Close stops watching.
func (l *Loader) Close() error {
	var err error
	l.stop.Do(func() {
		close(l.done)
		if l.watcher != nil {
			err = l.watcher.Close()
		}
	})
	return err
}

// loadConfigFromFile decodes path over the defaults. A missing file yields
// the defaults.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	ext := filepath.Ext(path)
	if decode, ok := decoders[ext]; ok {
		cfg := DefaultConfig()
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", ext, err)
		}
		return cfg, nil
	}

	for _, guess := range guessOrder {
		cfg := DefaultConfig()
		if decoders[guess](data, cfg) == nil {
			return cfg, nil
		}
	}
	return nil, errors.New("unable to parse config file (tried TOML, JSON, YAML)")
}
