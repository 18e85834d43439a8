package registry

// Wire shapes of the registry's search and version listings.

type searchedArtifact struct {
	GroupID     string            `json:"groupId"`
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	State       string            `json:"state"`
	Labels      []string          `json:"labels"`
	Properties  map[string]string `json:"properties"`
}

type artifactSearchResults struct {
	Artifacts []searchedArtifact `json:"artifacts"`
	Count     int                `json:"count"`
}

type searchedVersion struct {
	Version   string `json:"version"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	State     string `json:"state"`
	CreatedOn string `json:"createdOn"`
}

type versionSearchResults struct {
	Versions []searchedVersion `json:"versions"`
	Count    int               `json:"count"`
}
