package v1

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func internalErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
}

// validationErrorResponse answers 400 for anything ShouldBindJSON rejects.
func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, http.StatusBadRequest, MalformedBodyCode)
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Field(), ferr.Tag(), ferr.Param())}
	}
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
	}
	response.Errors = out
	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(field string, tag string, value string) string {
	label := fieldLabel(field)
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", label)
	case "min":
		return fmt.Sprintf("%s has to be a minimum %v characters", label, value)
	case "max":
		return fmt.Sprintf("%s has to be a maximum %v characters", label, value)
	case "len":
		return fmt.Sprintf("%s has to be exactly %v characters", label, value)
	}
	return tag
}

func fieldLabel(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}
