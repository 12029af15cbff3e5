// Package docs registers the gateway's OpenAPI document with swag so that
// echo-swagger can serve it under /swagger/*.
package docs

import (
	"encoding/json"

	"rider/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

// ReadDoc returns the OpenAPI document as JSON.
func (openAPIDoc) ReadDoc() string {
	spec, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(spec)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
