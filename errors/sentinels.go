package errors

// Sentinel errors surfaced at the validation boundary: the DES core itself
// has no runtime failure mode given fixed-size input, so every error below
// is raised before the cipher is ever invoked (key/block sizing, hex/file
// format, or CLI argument combinations).
const (
	// ErrInvalidKeySize is returned when a key is not exactly 8 bytes.
	ErrInvalidKeySize = ConstError("invalid key size: must be 8 bytes (64 bits)")

	// ErrInvalidBlockSize is returned when a block is not exactly 8 bytes.
	ErrInvalidBlockSize = ConstError("invalid block size: must be 8 bytes (64 bits)")

	// ErrInvalidHexDigit is returned when a key string contains a
	// character outside [0-9A-Fa-f].
	ErrInvalidHexDigit = ConstError("invalid hex digit")

	// ErrInvalidKeyFileFormat is returned when a key file is not exactly
	// 16 hex characters followed by a newline.
	ErrInvalidKeyFileFormat = ConstError("invalid key file format: expected 16 hex characters followed by a newline")

	// ErrInvalidDataFileSize is returned when a data file is not exactly
	// one 64-bit block.
	ErrInvalidDataFileSize = ConstError("invalid data file size: expected exactly 8 bytes")

	// ErrMutuallyExclusiveFlags is returned when both -e and -d are given.
	ErrMutuallyExclusiveFlags = ConstError("-e (encrypt) and -d (decrypt) cannot both be specified")

	// ErrMissingDirection is returned when neither -e nor -d is given.
	ErrMissingDirection = ConstError("one of -e (encrypt) or -d (decrypt) is required")

	// ErrMissingKeyFile is returned when -k is not given.
	ErrMissingKeyFile = ConstError("-k (key file) is required")

	// ErrMissingDataFile is returned when -f is not given.
	ErrMissingDataFile = ConstError("-f (data file) is required")
)
