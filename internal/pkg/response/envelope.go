package response

import "github.com/gin-gonic/gin"

// Envelope is the JSON body of every booking API response.
// Exactly one of Data or Errors is meaningful; Errors is always present.
type Envelope struct {
	Data   any      `json:"data,omitempty"`
	Errors []string `json:"errors"`
}

// Data sends a successful envelope.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Data: data, Errors: []string{}})
}

// Errors sends an envelope holding only error messages.
func Errors(c *gin.Context, status int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	c.JSON(status, Envelope{Errors: messages})
}
