package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "Validation error"
	MalformedBodyCode      = 6001
	MalformedBodyMessage   = "malformed request body"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
} // @name ValidationError

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case ValidationErrorCode:
		errorStruct.ErrorCode = ValidationErrorCode
		errorStruct.ErrorMessage = ValidationErrorMessage
	case MalformedBodyCode:
		errorStruct.ErrorCode = MalformedBodyCode
		errorStruct.ErrorMessage = MalformedBodyMessage
	}

	return errorStruct
}
