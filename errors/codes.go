package errors

// ErrorCode identifies an application-level error category. Codes are
// stable and returned to clients alongside the HTTP status.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Review workflow
	ErrorCode_INVALID_STATUS ErrorCode = 2000

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 3000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 3001
	ErrorCode_DB_MIGRATION_FAILED  ErrorCode = 3002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_INVALID_STATUS:       "INVALID_STATUS",
	ErrorCode_DB_CONNECTION_FAILED: "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:      "DB_QUERY_FAILED",
	ErrorCode_DB_MIGRATION_FAILED:  "DB_MIGRATION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
