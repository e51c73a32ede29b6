// SPDX-License-Identifier: EPL-2.0

package song

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ik5/trackload/source"
)

// LoadFlags trims what a loader decodes. Header, channel and order data
// are decoded the same whatever the flags.
type LoadFlags uint

const (
	LoadNoSamples LoadFlags = 1 << iota
	LoadNoPatterns
)

// SongLoader decodes one module format.
//
// LoadSong returns an error wrapping ErrUnsupported when the signature does
// not match. Once the signature matches, every failure wraps ErrFormat and
// no other loader gets a chance. logger receives non-fatal warnings.
type SongLoader interface {
	Name() string
	LoadSong(src *source.Source, flags LoadFlags, logger *log.Logger) (*Song, error)
}

// SampleLoader decodes one standalone sample format, with the same
// ErrUnsupported contract as SongLoader.
type SampleLoader interface {
	Name() string
	LoadSample(src *source.Source) (*Sample, error)
}

// Info is a cheap description of a file, as shown in a file browser.
type Info struct {
	Format      string
	Description string
	Title       string
}

// Prober is implemented by loaders that can describe a file without
// decoding it.
type Prober interface {
	Probe(data []byte) (Info, bool)
}

// Registry holds the loaders in priority order. Register everything at
// startup; lookups are safe for concurrent use.
type Registry struct {
	songs   []SongLoader
	samples []SampleLoader

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.RWMutex{},
	}
}

// RegisterSong appends a song loader. Loaders are tried in the order they
// were registered.
func (r *Registry) RegisterSong(l SongLoader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.songs = append(r.songs, l)
}

// RegisterSample appends a sample loader.
func (r *Registry) RegisterSample(l SampleLoader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.samples = append(r.samples, l)
}

// SongLoaders returns the song loaders in priority order.
func (r *Registry) SongLoaders() []SongLoader {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return append([]SongLoader(nil), r.songs...)
}

// SampleLoaders returns the sample loaders in priority order.
func (r *Registry) SampleLoaders() []SampleLoader {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return append([]SampleLoader(nil), r.samples...)
}

// LoadSong tries each song loader from the start of src until one commits.
func (r *Registry) LoadSong(src *source.Source, flags LoadFlags, logger *log.Logger) (*Song, error) {
	if logger == nil {
		logger = log.Default()
	}

	for _, l := range r.SongLoaders() {
		src.Rewind()
		s, err := l.LoadSong(src, flags, logger)
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name(), err)
		}
		return s, nil
	}

	return nil, ErrUnsupported
}

// LoadSample tries each sample loader from the start of src until one
// commits.
func (r *Registry) LoadSample(src *source.Source) (*Sample, error) {
	for _, l := range r.SampleLoaders() {
		src.Rewind()
		smp, err := l.LoadSample(src)
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.Name(), err)
		}
		return smp, nil
	}

	return nil, ErrUnsupported
}

// Info asks every song loader that implements Prober to describe data.
func (r *Registry) Info(data []byte) (Info, bool) {
	for _, l := range r.SongLoaders() {
		p, ok := l.(Prober)
		if !ok {
			continue
		}
		if info, ok := p.Probe(data); ok {
			return info, true
		}
	}
	return Info{}, false
}
