package types

import "net/http"

type Error struct {
	code  int
	msg   string
	cause error
}

func (x Error) Error() string {
	msg := x.msg
	if x.cause != nil {
		msg += ": " + x.cause.Error()
	}
	return msg
}
func (x Error) Code() int { return x.code }
func (x Error) Wrap(cause error) Error {
	return Error{code: x.code, msg: x.msg, cause: cause}
}
func (x Error) Unwrap() error { return x.cause }

// Is reports whether target is the same kind of error, ignoring the wrapped cause.
func (x Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.code == x.code && t.msg == x.msg
}

var (
	ErrInvalidContentType = Error{code: http.StatusBadRequest, msg: "unsupported Content-Type"}
	ErrInvalidInput       = Error{code: http.StatusBadRequest, msg: "invalid input"}
	ErrForbidden          = Error{code: http.StatusForbidden, msg: "forbidden"}

	ErrDecode     = Error{code: http.StatusBadRequest, msg: "failed to decode message data"}
	ErrParse      = Error{code: http.StatusBadRequest, msg: "failed to parse reading"}
	ErrResolution = Error{code: http.StatusInternalServerError, msg: "failed to resolve target table"}
	ErrInsert     = Error{code: http.StatusInternalServerError, msg: "failed to insert row"}
)
