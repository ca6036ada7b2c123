package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Services and stores return these
// (optionally wrapped) so the transport layer can translate them into status codes.
//
// - ErrNotFound: nothing has been computed or stored yet
// - ErrInvalidInput: malformed event or request payload
// - ErrInvalidSlot: slot index outside the physical slot range
// - ErrUnknownLocale: no catalog can serve the requested locale
// - ErrUnavailable: a collaborator (display sink, catalog dir) is unreachable
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrUnknownLocale = errors.New("unknown locale")
	ErrUnavailable   = errors.New("unavailable")
)
