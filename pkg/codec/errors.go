package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is.
var (
	// ErrUnrecognizedVariant means no reserved tag matched and the family has no fallback.
	ErrUnrecognizedVariant = errors.New("unrecognized variant")

	// ErrInvalidEnumValue means a closed scalar vocabulary did not match.
	// Outside strict mode it is reported to the observer and the value is treated as absent.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrMissingField means a required field was absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidType means a field held a JSON value of the wrong type.
	ErrInvalidType = errors.New("invalid type")
)

// DecodeError locates a decode failure inside the document.
type DecodeError struct {
	Kind   error  // one of the sentinel errors above
	Family string // union family or record being decoded
	Path   string // slash separated location, e.g. /nodes/2/Node/executor
	Raw    any    // offending JSON value
	Err    error  // optional underlying error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s at %s", e.Kind, e.Family, pathOrRoot(e.Path))
	if e.Raw != nil {
		msg += ": " + rawString(e.Raw)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Kind }

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func rawString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	const limit = 200
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
