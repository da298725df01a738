/*
DESCRIPTION
  Package decoder implements the VC-2 conformance-checking bitstream
  parser: the parse-info dispatch loop, sequence and picture header
  decoding, transform-parameter and slice decoding, fragment
  reassembly, and the conformance assertions that turn a malformed or
  non-conformant stream into a diagnosable error.
*/
package decoder

import "fmt"

// Kind identifies the category of a decoding failure, independent of
// the particular field or value involved.
type Kind string

const (
	KindIo                                  Kind = "Io"
	KindUnexpectedEndOfStream               Kind = "UnexpectedEndOfStream"
	KindBadMagic                            Kind = "BadMagic"
	KindBadParseCode                        Kind = "BadParseCode"
	KindBadWaveletIndex                     Kind = "BadWaveletIndex"
	KindBadHOWaveletIndex                   Kind = "BadHOWaveletIndex"
	KindBadProfile                          Kind = "BadProfile"
	KindBadLevel                            Kind = "BadLevel"
	KindBadBaseVideoFormat                  Kind = "BadBaseVideoFormat"
	KindBadPictureCodingMode                Kind = "BadPictureCodingMode"
	KindZeroSlicesInCodedPicture            Kind = "ZeroSlicesInCodedPicture"
	KindSliceBytesHasZeroDenominator        Kind = "SliceBytesHasZeroDenominator"
	KindSliceSizeScalerIsZero               Kind = "SliceSizeScalerIsZero"
	KindNoQuantisationMatrixAvailable       Kind = "NoQuantisationMatrixAvailable"
	KindValueNotAllowedInLevel              Kind = "ValueNotAllowedInLevel"
	KindNonConsecutivePictureNumbers        Kind = "NonConsecutivePictureNumbers"
	KindEarliestFieldHasOddPictureNumber    Kind = "EarliestFieldHasOddPictureNumber"
	KindSequenceHeaderChangedMidSequence    Kind = "SequenceHeaderChangedMidSequence"
	KindProfileChanged                      Kind = "ProfileChanged"
	KindLevelChanged                        Kind = "LevelChanged"
	KindParseCodeNotAllowedInSequence       Kind = "ParseCodeNotAllowedInSequence"
	KindParseCodeSequenceNotEnded           Kind = "ParseCodeSequenceNotEnded"
	KindBadPresetIndex                      Kind = "BadPresetIndex"
)

// Error is the decoder's single error type: every failure is tagged
// with a Kind and carries the diagnostic payload a human needs to
// locate and understand it.
type Error struct {
	Kind Kind

	// ByteOffset/BitIndex locate the offending field.
	ByteOffset int64
	BitIndex   int

	Message string

	// Value is the offending value, when applicable (formatted lazily
	// by the caller via fmt.Sprintf("%v", ...) rather than typed, since
	// the set of possible value types spans ints, enums and strings).
	Value interface{}

	// Allowed, when non-nil, lists the values that would have been
	// accepted.
	Allowed []interface{}
}

func (e *Error) Error() string {
	s := fmt.Sprintf("decoder: %s at byte %d bit %d: %s", e.Kind, e.ByteOffset, e.BitIndex, e.Message)
	if e.Value != nil {
		s += fmt.Sprintf(" (got %v)", e.Value)
	}
	if len(e.Allowed) > 0 {
		s += fmt.Sprintf(" (allowed: %v)", e.Allowed)
	}
	return s
}

func newError(kind Kind, pos position, msg string, value interface{}, allowed []interface{}) *Error {
	return &Error{
		Kind:       kind,
		ByteOffset: pos.byteOffset,
		BitIndex:   pos.bitIndex,
		Message:    msg,
		Value:      value,
		Allowed:    allowed,
	}
}
