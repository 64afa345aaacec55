package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses an integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// bindStrict decodes a JSON body rejecting unknown fields. The merge
// endpoints shallow-copy caller fields into shared state, so an
// unexpected key must be an error rather than a silent write.
func bindStrict(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
