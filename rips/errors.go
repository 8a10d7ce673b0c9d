package rips

import "errors"

// Error kinds, per the four-way classification the engine uses: input,
// argument, capacity, and internal-invariant errors. Callers should test
// with errors.Is against these sentinels rather than string-matching.
var (
	// ErrInput covers malformed point files: bad separators, unparseable
	// numbers, missing files.
	ErrInput = errors.New("rips: input error")

	// ErrArgument covers missing or unparseable CLI arguments/modes.
	ErrArgument = errors.New("rips: argument error")

	// ErrCapacity covers point counts exceeding NMax or simplex
	// dimensions exceeding DimMax+1.
	ErrCapacity = errors.New("rips: capacity exceeded")

	// ErrInternalInvariant covers basis inconsistencies that should be
	// unreachable if the reducer is correct: a zero column surviving
	// Z-reduction, a low() lookup missing its key, a face-cache miss.
	ErrInternalInvariant = errors.New("rips: internal invariant violated")
)
