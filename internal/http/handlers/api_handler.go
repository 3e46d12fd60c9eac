// API documentation handler.
//
// The contract-level endpoint index is a static JSON document embedded at
// build time and served verbatim under the "endpoints" key, so clients can
// discover the surface without a Swagger-capable toolchain.
package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// EndpointsResponse wraps the machine-readable endpoint index.
type EndpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// GetEndpoints godoc
// @ID          getEndpoints
// @Summary     Describe all available endpoints
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  handlers.EndpointsResponse
// @Router      / [get]
func (h *Handlers) GetEndpoints(c *gin.Context) {
	ok(c, http.StatusOK, EndpointsResponse{Endpoints: endpointsJSON})
}
