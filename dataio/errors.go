package dataio

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported or undetectable format name.
	ErrUnknownFormat = errors.New("dataio: unknown format")

	// ErrNoData indicates a dataset with neither observations, transitions nor states.
	ErrNoData = errors.New("dataio: dataset is empty")

	// ErrBadRecord indicates a CSV record that is not numeric or whose width
	// differs from the first record.
	ErrBadRecord = errors.New("dataio: malformed record")
)
