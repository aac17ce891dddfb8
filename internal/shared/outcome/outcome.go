package outcome

// Code classifies the result of a use-case execution.
type Code string

const (
	CodeSuccess       Code = "SUCCESS"
	CodeNotFound      Code = "NOT_FOUND"
	CodeInvalidParams Code = "INVALID_PARAMS"
	CodeNetworkError  Code = "NETWORK_ERROR"
	CodeServerError   Code = "SERVER_ERROR"
	CodeHTTPError     Code = "HTTP_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
	CodeDeleted       Code = "DELETED"
	CodeError         Code = "ERROR"
)

// IsPositive reports whether the code represents a successful execution.
func (c Code) IsPositive() bool {
	return c == CodeSuccess || c == CodeDeleted
}

// Outcome is the uniform result returned by every use-case. Data is only
// meaningful when Success is true.
type Outcome[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// Result is the data-less view of an outcome produced by the error handler.
type Result struct {
	Code    Code
	Message string
}

// Succeed wraps data into a SUCCESS outcome.
func Succeed[T any](data T, message string) Outcome[T] {
	return Outcome[T]{Success: true, Data: data, Message: message, Code: CodeSuccess}
}

// Deleted builds the positive outcome used by delete use-cases.
func Deleted[T any](message string) Outcome[T] {
	return Outcome[T]{Success: true, Message: message, Code: CodeDeleted}
}

// Fail builds a failed outcome with the given code.
func Fail[T any](code Code, message string) Outcome[T] {
	return Outcome[T]{Success: false, Message: message, Code: code}
}

// FromResult converts a classified failure into a typed outcome.
func FromResult[T any](result Result) Outcome[T] {
	return Fail[T](result.Code, result.Message)
}

// Recorder observes the code of every executed operation.
type Recorder interface {
	Record(operation string, code Code)
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) Record(string, Code) {}
