package awpak

import "errors"

// ErrInvalidEdit is returned when an edit cannot apply to the document, such
// as removing the first node or retagging into an unknown variant.
var ErrInvalidEdit = errors.New("invalid edit")

// ErrUnknownFormat is returned by Export for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")
