package response

import (
	"github.com/gin-gonic/gin"
)

// Success sends a JSON body of the form {"message": ..., <data keys>...}.
// Payload keys are merged at the top level to match the public API contract
// (e.g. {"message": "...", "token": "...", "user": {...}}).
func Success(c *gin.Context, statusCode int, message string, data gin.H) {
	body := gin.H{"message": message}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends an error response with a typed code and its canonical message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorBody(code, nil, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorBody(code, fields, nil))
}

// FailWithError sends an error response carrying the underlying error detail.
// The detail is included only outside release mode.
func FailWithError(c *gin.Context, statusCode int, code ErrCode, err error) {
	c.JSON(statusCode, errorBody(code, nil, err))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorBody(code, nil, nil))
}

func errorBody(code ErrCode, fields map[string]string, err error) gin.H {
	body := gin.H{
		"message": GetMessage(code),
		"code":    code,
	}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		body["error"] = err.Error()
	}
	return body
}
