// Package sudokuerr defines the sentinel error taxonomy shared by every
// engine package: every error the engine raises wraps one of these with
// fmt.Errorf("%w: ...") so callers can match with errors.Is.
package sudokuerr

import "errors"

var (
	// ErrInvalidCoordinate is returned when (row, col) is outside [0, N).
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidSize is returned when a box width or height is < 1.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidCount is returned when a generator thinning target is
	// out of range for the grid it targets.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidSymmetry is returned for an unrecognized symmetry label.
	ErrInvalidSymmetry = errors.New("invalid symmetry")

	// ErrParse is returned when a grid string cannot be decoded, e.g.
	// its length does not factor into a rectangular box shape.
	ErrParse = errors.New("parse error")

	// ErrGenerationFailed is returned when a generator exhausts its
	// try budget without producing a puzzle meeting its target.
	ErrGenerationFailed = errors.New("generation failed")
)
