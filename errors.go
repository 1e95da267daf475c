package uax

import "fmt"

// InvalidUTF8Error is returned by a CodePointIterator running in StrictUTF8
// mode when it encounters an ill-formed byte sequence.
type InvalidUTF8Error struct {
	Offset int // byte offset of the first offending byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("uax: invalid UTF-8 at byte offset %d", e.Offset)
}

// Is reports whether target is an *InvalidUTF8Error, so that callers can
// use errors.Is(err, &uax.InvalidUTF8Error{}) without caring about Offset.
func (e *InvalidUTF8Error) Is(target error) bool {
	_, ok := target.(*InvalidUTF8Error)
	return ok
}
