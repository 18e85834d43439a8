package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		artifactType string
		want         string
	}{
		{"OPENAPI", "yml"},
		{"ASYNCAPI", "yml"},
		{"AVRO", "avro"},
		{"GRAPHQL", "gql"},
		{"XML", "xml"},
		{"XSD", "xml"},
		{"WSDL", "xml"},
		{"PROTOBUF", "proto"},
		{"KCONNECT", "json"},
		{"JSON", "json"},
		{"", "txt"},
		{"UNKNOWN", "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.artifactType, func(t *testing.T) {
			assert.Equal(t, tt.want, extensionFor(tt.artifactType))
		})
	}
}

func TestContentTypeForFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"pets.yaml", "application/x-yaml"},
		{"pets.YML", "application/x-yaml"},
		{"schema.xsd", "application/xml"},
		{"service.wsdl", "application/xml"},
		{"messages.proto", "application/x-protobuf"},
		{"query.gql", "application/graphql"},
		{"record.avsc", "application/json"},
		{"noext", "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeForFile(tt.path))
		})
	}
}
