package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes, normalizes, and validates a JSON graph definition.
func ParseJSON(data []byte) (*GraphSpec, error) {
	var spec GraphSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: decode json: %w", err)
	}

	return finish(&spec)
}

// ParseYAML decodes, normalizes, and validates a YAML graph definition.
func ParseYAML(data []byte) (*GraphSpec, error) {
	var spec GraphSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	return finish(&spec)
}

// Load reads and parses the graph definition at path, dispatching on the
// file extension: .json, .yaml, or .yml.
func Load(path string) (*GraphSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func finish(spec *GraphSpec) (*GraphSpec, error) {
	spec.normalize()
	if err := spec.validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// Loader reads a graph-definition file and can watch it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *GraphSpec
	onChange []func(*GraphSpec)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	spec, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, current: spec}, nil
}

// Spec returns the current (latest) graph definition.
func (l *Loader) Spec() *GraphSpec {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked whenever the definition reloads.
func (l *Loader) OnChange(fn func(*GraphSpec)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the definition on
// file changes. A rewrite that fails to parse keeps the previous definition
// in place. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()

		return nil, fmt.Errorf("config: watch %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					spec, err := Load(l.path)
					if err != nil {
						continue
					}
					l.mu.Lock()
					l.current = spec
					callbacks := make([]func(*GraphSpec), len(l.onChange))
					copy(callbacks, l.onChange)
					l.mu.Unlock()
					for _, fn := range callbacks {
						fn(spec)
					}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
