package registry

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildPath", func() {
	sel := Selection{Group: "test", Artifact: "pet-api"}

	It("builds the default artifact path", func() {
		Expect(BuildPath(sel, OpDefault)).To(Equal("groups/test/artifacts/pet-api"))
	})

	It("scopes the default path to a pinned version", func() {
		pinned := sel.WithVersion("2")
		Expect(BuildPath(pinned, OpDefault)).To(Equal("groups/test/artifacts/pet-api/versions/2"))
	})

	It("treats latest as unpinned", func() {
		latest := sel.WithVersion(LatestVersion)
		Expect(BuildPath(latest, OpDefault)).To(Equal("groups/test/artifacts/pet-api"))
	})

	It("builds the meta path with the same version rule", func() {
		Expect(BuildPath(sel, OpMeta)).To(Equal("groups/test/artifacts/pet-api/meta"))
		Expect(BuildPath(sel.WithVersion("3"), OpMeta)).To(Equal("groups/test/artifacts/pet-api/versions/3/meta"))
		Expect(BuildPath(sel.WithVersion(LatestVersion), OpMeta)).To(Equal("groups/test/artifacts/pet-api/meta"))
	})

	It("builds the state path with the same version rule", func() {
		Expect(BuildPath(sel, OpState)).To(Equal("groups/test/artifacts/pet-api/state"))
		Expect(BuildPath(sel.WithVersion("3"), OpState)).To(Equal("groups/test/artifacts/pet-api/versions/3/state"))
	})

	It("builds versions, group, delete and search paths", func() {
		Expect(BuildPath(sel, OpVersions)).To(Equal("groups/test/artifacts/pet-api/versions"))
		Expect(BuildPath(sel, OpGroup)).To(Equal("groups/test/artifacts"))
		Expect(BuildPath(sel, OpDelete)).To(Equal("groups/test/artifacts/pet-api"))
		Expect(BuildPath(Selection{}, OpSearch)).To(Equal("search/artifacts"))
	})

	It("appends params in insertion order", func() {
		path := BuildPath(Selection{}, OpSearch,
			Param{Key: "group", Value: "test"},
			Param{Key: "limit", Value: "50"},
			Param{Key: "offset", Value: "0"},
		)
		Expect(path).To(Equal("search/artifacts?group=test&limit=50&offset=0"))
	})

	It("skips params with empty values", func() {
		path := BuildPath(Selection{}, OpSearch,
			Param{Key: "group", Value: ""},
			Param{Key: "limit", Value: "50"},
		)
		Expect(path).To(Equal("search/artifacts?limit=50"))
	})

	It("is deterministic", func() {
		params := []Param{{Key: "limit", Value: "50"}, {Key: "offset", Value: "0"}}
		first := BuildPath(sel, OpVersions, params...)
		second := BuildPath(sel, OpVersions, params...)
		Expect(first).To(Equal(second))
	})
})
