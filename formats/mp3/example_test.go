// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"errors"
	"fmt"

	"github.com/ik5/trackload/formats/mp3"
	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

// ExampleSampleLoader_LoadSample shows a file being passed over so the
// next loader can try it.
func ExampleSampleLoader_LoadSample() {
	_, err := mp3.SampleLoader{}.LoadSample(source.New([]byte("not an mp3 file")))
	fmt.Println(errors.Is(err, song.ErrUnsupported))
	// Output:
	// true
}
