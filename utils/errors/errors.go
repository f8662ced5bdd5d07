package errors

import (
	"fmt"

	"github.com/getinmotion/telar-sub006/constant"
)

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorf builds a CustomError whose message names the offending
// field or value, keeping the code/HTTP mapping of the error type.
func SetCustomErrorf(errorType constant.ErrorType, format string, args ...interface{}) CustomError {
	return CustomError{
		errType: errorType,
		message: fmt.Sprintf(format, args...),
	}
}
