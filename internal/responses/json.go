package responses

import "github.com/gin-gonic/gin"

type APIResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func JSON(c *gin.Context, statusCode int, status string, data any, message string, err error) {
	response := APIResponse{
		Status:    status,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("requestId"),
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(statusCode, response)
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	JSON(c, statusCode, "success", data, message, nil)
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	JSON(c, statusCode, "error", nil, message, err)
}
