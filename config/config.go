/*
DESCRIPTION
  Package config contains the configuration settings for the VC-2
  conformance decoder: logging, per-field output callbacks, strict
  conformance checking, and table overrides.
*/
package config

import (
	"github.com/bbc/vc2-conformance/tables"
	"github.com/bbc/vc2-conformance/valueset"
	"github.com/bbc/vc2-conformance/vc2log"
)

// Defaults for the fields a caller is unlikely to override.
const (
	defaultStrict            = true
	defaultRecordSkippedData = false
)

// PictureCallback receives each fully-decoded and finalised picture as
// it is produced, keyed by component.
type PictureCallback func(pictureNumber uint32, y, c1, c2 [][]uint32)

// Config holds everything that tunes a decoding run: where log output
// goes, how decoded pictures are delivered to the caller, whether
// conformance violations are treated as fatal, and the constraint
// tables used to check conformance.
type Config struct {
	// Logger receives structured debug/info/warning/error messages at
	// the same granularity the reference decoder logs at: once per
	// field group, not once per field.
	Logger vc2log.Logger

	// OnPicture, if set, is called once per fully decoded picture.
	OnPicture PictureCallback

	// Strict, when true, makes a data unit that the level's sequencing
	// grammar does not permit at that point abort decoding with an
	// error. When false, that one check is ignored without logging.
	// Every other constraint violation aborts decoding regardless of
	// Strict.
	Strict bool

	// RecordSkippedData causes auxiliary_data and padding_data blocks
	// to be logged (kind and length in bytes) rather than silently
	// discarded.
	RecordSkippedData bool

	// LevelConstraints overrides the embedded level-constraint table,
	// letting a caller test against a custom or draft level definition.
	LevelConstraints valueset.Table

	// QuantMatrixOverrides overrides or extends the default
	// quantisation-matrix table.
	QuantMatrixOverrides map[tables.QuantMatrixKey]tables.QuantMatrix
}

// Default returns a Config with the same defaults the reference
// decoder implicitly assumes: strict conformance checking, skipped
// data not recorded, logging discarded, and the built-in tables used
// unmodified.
func Default() Config {
	return Config{
		Logger:            vc2log.Discard,
		Strict:            defaultStrict,
		RecordSkippedData: defaultRecordSkippedData,
		LevelConstraints:  tables.LevelConstraints,
	}
}

// Validate fills in a nil Logger and a nil LevelConstraints table with
// their defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = vc2log.Discard
	}
	if c.LevelConstraints == nil {
		c.LevelConstraints = tables.LevelConstraints
	}
}

// LookupQuantMatrix resolves a default quantisation matrix, consulting
// any configured override before falling back to the built-in table.
func (c Config) LookupQuantMatrix(waveletHO, wavelet tables.WaveletIndex, dwtDepthHO, dwtDepth int) (tables.QuantMatrix, bool) {
	key := tables.QuantMatrixKey{
		WaveletIndexHO: waveletHO,
		WaveletIndex:   wavelet,
		DWTDepthHO:     dwtDepthHO,
		DWTDepth:       dwtDepth,
	}
	if c.QuantMatrixOverrides != nil {
		if m, ok := c.QuantMatrixOverrides[key]; ok {
			return m, true
		}
	}
	return tables.LookupDefaultQuantMatrix(waveletHO, wavelet, dwtDepthHO, dwtDepth)
}
