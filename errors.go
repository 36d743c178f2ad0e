package adpcm

// Error represents a codec error code.
type Error int

// Error codes.
const (
	ErrNone              Error = 0
	ErrNilBuffer         Error = 1
	ErrEmptyInput        Error = 2
	ErrShortBuffer       Error = 3
	ErrBufferReleased    Error = 4
	ErrInvalidSampleRate Error = 5
	ErrInvalidPassband   Error = 6
	ErrOddLength         Error = 7
)

var errMessages = [8]string{
	"no error",
	"nil input buffer",
	"empty input buffer",
	"output buffer too small",
	"buffer already released",
	"sample rate must be positive",
	"passband corners must satisfy 0 < low < high < rate/2",
	"PCM byte count is not a multiple of 2",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
