package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/csv-challenge/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// serviceErrorResponse writes the mapped response for err. Unmapped errors are logged and become 500.
func serviceErrorResponse(c *gin.Context, op string, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" failed", zap.Error(err))
	}

	errorResponse(c, status, code)
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: ValidationErrorMessage,
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}

	errorResponse(c, http.StatusBadRequest, InvalidRequestCode)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid url"
	case "min":
		return fmt.Sprintf("must contain at least %v", value)
	case "max":
		return fmt.Sprintf("must contain at most %v", value)
	case "username":
		return "must be 1 to 64 letters, digits, underscores or hyphens"
	case "numeric_code":
		return "must contain digits only"
	case "len":
		return fmt.Sprintf("must be exactly %v characters", value)
	}
	return tag
}
