// SPDX-License-Identifier: EPL-2.0

package trackload

import (
	"fmt"
	"log"

	"github.com/ik5/trackload/container"
	"github.com/ik5/trackload/formats/aiff"
	"github.com/ik5/trackload/formats/mp3"
	"github.com/ik5/trackload/formats/s3m"
	"github.com/ik5/trackload/formats/vorbis"
	"github.com/ik5/trackload/formats/wav"
	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// DefaultRegistry returns a registry holding every loader in this module,
// in the order they are tried.
func DefaultRegistry() *song.Registry {
	reg := song.NewRegistry()
	reg.RegisterSong(s3m.Loader{})

	reg.RegisterSample(s3m.SampleLoader{})
	reg.RegisterSample(wav.SampleLoader{})
	reg.RegisterSample(aiff.SampleLoader{})
	reg.RegisterSample(vorbis.SampleLoader{})
	reg.RegisterSample(mp3.SampleLoader{})

	return reg
}

// Decoder turns file contents into songs and samples. The zero value uses
// DefaultRegistry, loads everything and logs to log.Default().
type Decoder struct {
	Registry *song.Registry
	Flags    song.LoadFlags
	Logger   *log.Logger
}

func (d *Decoder) registry() *song.Registry {
	if d.Registry != nil {
		return d.Registry
	}
	return DefaultRegistry()
}

// Decode unpacks any container around data and decodes the module inside.
func (d *Decoder) Decode(data []byte) (*song.Song, error) {
	return d.registry().LoadSong(source.New(container.Unpack(data)), d.Flags, d.Logger)
}

// DecodeFile reads path, or stdin for "-", and decodes it.
func (d *Decoder) DecodeFile(path string) (*song.Song, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", song.ErrFile, err)
	}
	return d.Decode(src.Bytes())
}

// DecodeSample decodes a standalone sample file.
func (d *Decoder) DecodeSample(data []byte) (*song.Sample, error) {
	return d.registry().LoadSample(source.New(data))
}

// LoadSample reads path, or stdin for "-", as a standalone sample.
func (d *Decoder) LoadSample(path string) (*song.Sample, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", song.ErrFile, err)
	}
	return d.registry().LoadSample(src)
}

// Info describes data without decoding it. Containers are unpacked first.
func (d *Decoder) Info(data []byte) (song.Info, bool) {
	return d.registry().Info(container.Unpack(data))
}
