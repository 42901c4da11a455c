package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LOG returns a request-scoped logger
func LOG(c *gin.Context) *logrus.Entry {
	return NewSublogger("rest").
		WithField("method", c.Request.Method).
		WithField("path", c.Request.URL.Path)
}

// LOGE finishes the request with an error envelope and returns a logger
// carrying the error. Callers only need to log and return.
func LOGE(c *gin.Context, err error, status int) *logrus.Entry {
	message := http.StatusText(status)
	if err != nil {
		message = err.Error()
	}

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})

	return LOG(c).WithError(err).WithField("status", status)
}
