package servers

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var loadSpec = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, err
	}
	if err = spec.Validate(loader.Context); err != nil {
		return nil, err
	}
	return spec, nil
})

// GetSwagger returns the parsed and validated OpenAPI document. Callers must
// not mutate the result.
func GetSwagger() (*openapi3.T, error) {
	return loadSpec()
}

// RawSpec returns the embedded document as written.
func RawSpec() []byte {
	out := make([]byte, len(rawSpec))
	copy(out, rawSpec)
	return out
}
