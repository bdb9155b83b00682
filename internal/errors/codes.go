package errors

// Code classifies an error for programmatic handling.
type Code string

// Error codes. The set mirrors the gRPC canonical codes this codebase
// actually maps failures onto: gateway transport failures are Unavailable,
// HTTP timeouts are DeadlineExceeded, non-2xx statuses map per status,
// malformed payloads are Internal.
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}
