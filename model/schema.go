package model

import "github.com/invopop/jsonschema"

// ConfigSchema returns the JSON schema describing the serialized form of
// ModelConfig. Useful for validating persisted configurations or for
// documenting the wire format; it plays no part in resolution.
func ConfigSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&ModelConfig{})
}
