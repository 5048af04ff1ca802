package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that accept it.
// Paths in uncompressed are streamed as written; gzip would hold SSE frames in its buffer.
func Compression(uncompressed ...string) gin.HandlerFunc {
	if len(uncompressed) == 0 {
		return gzip.Gzip(gzip.DefaultCompression)
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressed))
}
