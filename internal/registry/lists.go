package registry

import "strings"

// Fixed option lists the registry API understands. Kept as functions
// returning fresh slices so callers can't mutate the tables.

func States() []string {
	return []string{"ENABLED", "DISABLED", "DEPRECATED"}
}

func Types() []string {
	return []string{"AVRO", "PROTOBUF", "JSON", "OPENAPI", "ASYNCAPI", "GRAPHQL", "KCONNECT", "WSDL", "XSD", "XML"}
}

func SearchAttributes() []string {
	return []string{"name", "group", "description", "type", "state", "labels", "properties"}
}

func EditableFields() []string {
	return []string{"name", "description", "labels", "properties"}
}

// SearchCriteria is the active catalog filter. Empty means no filter.
type SearchCriteria struct {
	Attribute string
	Value     string
}

func (c SearchCriteria) Empty() bool {
	return c.Attribute == "" || c.Value == ""
}

// ServerSide reports whether the search endpoint supports the
// attribute as a query parameter. The rest are filtered client side
// over the fetched page, best effort.
func (c SearchCriteria) ServerSide() bool {
	switch c.Attribute {
	case "name", "group", "description":
		return true
	}
	return false
}

func (c SearchCriteria) matches(a searchedArtifact) bool {
	if c.Empty() || c.ServerSide() {
		return true
	}
	switch c.Attribute {
	case "type":
		return strings.EqualFold(a.Type, c.Value)
	case "state":
		return strings.EqualFold(a.State, c.Value)
	case "labels":
		for _, label := range a.Labels {
			if label == c.Value {
				return true
			}
		}
		return false
	case "properties":
		// match a bare key, or key=value
		key, value, exact := strings.Cut(c.Value, "=")
		got, ok := a.Properties[key]
		if !ok {
			return false
		}
		return !exact || got == value
	}
	return true
}
