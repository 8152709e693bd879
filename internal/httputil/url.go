package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the scheme and host the request was made against.
//
// The scheme defaults to http and only switches to https
// if the x-forwarded-proto header is set to "https".
//
// We can reasonably expect a reverse proxy to set x-forwarded-host
// as it is a de-facto standard. If it is set, we use it to construct
// the links together with the x-forwarded-prefix header. If no proxy
// is detected, the request host is used as is.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}
