package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip encoded request bodies so handlers always
// see plain JSON. A body that claims gzip but does not parse is rejected
// with 400 before any handler runs.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasGzipEncoding(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		compressed := c.Request.Body
		reader, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer compressed.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		// Length of the compressed stream no longer applies.
		c.Request.ContentLength = -1
		c.Next()
	}
}

func hasGzipEncoding(header string) bool {
	for _, token := range strings.Split(header, ",") {
		if strings.EqualFold(strings.TrimSpace(token), "gzip") {
			return true
		}
	}
	return false
}
