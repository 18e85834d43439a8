package registry

// LatestVersion is the registry's moving pointer to the most recently
// created version. It is a valid explicit selector, distinct from an
// empty Selection.Version which means "no version tier navigated yet".
const LatestVersion = "latest"

// Selection is the group/artifact/version context the user navigated
// to. It is a plain value: hand a copy to every async call chain and
// compare snapshots when results come back, never read shared state
// after an await gap.
type Selection struct {
	Group    string
	Artifact string
	Version  string
}

func (s Selection) HasArtifact() bool {
	return s.Artifact != ""
}

func (s Selection) HasVersion() bool {
	return s.Version != ""
}

// Pinned reports whether a concrete version, not "latest", is selected.
func (s Selection) Pinned() bool {
	return s.Version != "" && s.Version != LatestVersion
}

func (s Selection) WithVersion(version string) Selection {
	s.Version = version
	return s
}

// OrLatest defaults the version tier to "latest" when nothing deeper
// was navigated to.
func (s Selection) OrLatest() Selection {
	if s.Version == "" {
		s.Version = LatestVersion
	}
	return s
}

func (s Selection) String() string {
	out := s.Group
	if s.Artifact != "" {
		out += "/" + s.Artifact
	}
	if s.Version != "" {
		out += "@" + s.Version
	}
	return out
}
