package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.UGCPolicy()

// SanitizeJSONInput cleans string fields in JSON bodies before they
// reach a handler. Top-level strings and strings inside arrays (blog
// tags) are sanitized; other value types pass through untouched.
func SanitizeJSONInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if ct := c.ContentType(); ct != "" && !strings.HasPrefix(ct, "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
			c.Next()
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed JSON"})
			return
		}

		for k, v := range body {
			switch val := v.(type) {
			case string:
				body[k] = sanitizePolicy.Sanitize(val)
			case []interface{}:
				for i, item := range val {
					if s, ok := item.(string); ok {
						val[i] = sanitizePolicy.Sanitize(s)
					}
				}
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
