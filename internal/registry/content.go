package registry

import (
	"path/filepath"
	"strings"
)

// ContentTypeForFile picks the upload content type from the file
// extension; the client rewrites yaml types to application/x-yaml
// anyway, the server rejects bodies it cannot parse.
func ContentTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "application/x-yaml"
	case ".xml", ".xsd", ".wsdl":
		return "application/xml"
	case ".proto":
		return "application/x-protobuf"
	case ".graphql", ".gql":
		return "application/graphql"
	default:
		return "application/json"
	}
}
