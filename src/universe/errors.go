package universe

import "errors"

var (
	//ErrMalformedRecord reports a save record whose coordinates or state
	//tokens cannot be decoded
	ErrMalformedRecord = errors.New("malformed save record")
	//ErrUnsupportedState reports a state token outside the active rule's
	//state set, typically a save loaded against the wrong rule family
	ErrUnsupportedState = errors.New("unsupported cell state")
	//ErrUnknownPattern reports a stamp request for a template name absent
	//from the library
	ErrUnknownPattern = errors.New("unknown pattern")
)
