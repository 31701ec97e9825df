package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"moderation-srv/pkg/discord"
	pkgErrors "moderation-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 400. Server-side errors (5xx) are reported to Discord.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.Code >= http.StatusInternalServerError && d != nil {
			go func() {
				_ = d.SendError(context.Background(), "Server error",
					fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
			}()
		}
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// ErrorWithMap resolves err against the mapping before responding.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, d)
		return
	}
	Error(c, err, d)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   "Not found",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		go func() {
			_ = d.SendError(context.Background(), "Panic recovered",
				fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
				fmt.Errorf("%v", recovered))
		}()
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
