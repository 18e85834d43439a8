package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog", func() {
	var (
		server   *httptest.Server
		payload  string
		lastPath string
	)

	BeforeEach(func() {
		payload = `{"artifacts":[],"count":0}`
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.String()
			w.Write([]byte(payload))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	list := func(group string, crit SearchCriteria) []CatalogEntry {
		catalog := NewCatalog(testClient(server), 50)
		entries, err := catalog.List(context.Background(), group, crit)
		Expect(err).NotTo(HaveOccurred())
		return entries
	}

	Context("ordering", func() {
		BeforeEach(func() {
			payload = `{"artifacts":[
				{"groupId":"B","id":"a","type":"AVRO","state":"ENABLED"},
				{"groupId":"a","id":"z","type":"AVRO","state":"ENABLED"}
			],"count":2}`
		})

		It("sorts case-insensitively by group plus artifact id", func() {
			entries := list("B", SearchCriteria{})
			// "az" sorts before "ba"
			Expect(entries[0].Group).To(Equal("a"))
			Expect(entries[1].Group).To(Equal("B"))
		})
	})

	Context("top tier group headers", func() {
		BeforeEach(func() {
			payload = `{"artifacts":[
				{"groupId":"pets","id":"cat","type":"AVRO","state":"ENABLED"},
				{"groupId":"pets","id":"dog","type":"AVRO","state":"ENABLED"},
				{"groupId":"cars","id":"wheel","type":"JSON","state":"ENABLED"}
			],"count":3}`
		})

		It("emits one header per distinct group", func() {
			entries := list("", SearchCriteria{})
			Expect(entries).To(HaveLen(2))
			for _, e := range entries {
				Expect(e.Kind).To(Equal(CatalogGroup))
			}
			groups := []string{entries[0].Group, entries[1].Group}
			Expect(groups).To(ConsistOf("pets", "cars"))
		})
	})

	Context("empty results", func() {
		It("returns exactly one sentinel row", func() {
			entries := list("", SearchCriteria{})
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Kind).To(Equal(CatalogNoContent))
			Expect(entries[0].Name).To(Equal(NoContentLabel))
		})
	})

	Context("criteria", func() {
		BeforeEach(func() {
			payload = `{"artifacts":[
				{"groupId":"pets","id":"cat","type":"AVRO","state":"ENABLED","labels":["prod"],"properties":{"team":"core"}},
				{"groupId":"pets","id":"dog","type":"OPENAPI","state":"DEPRECATED","labels":["dev"],"properties":{"team":"web"}}
			],"count":2}`
		})

		It("sends name criteria server side", func() {
			list("pets", SearchCriteria{Attribute: "name", Value: "cat"})
			Expect(lastPath).To(ContainSubstring("name=cat"))
		})

		It("sends group criteria server side on a top tier fetch", func() {
			list("", SearchCriteria{Attribute: "group", Value: "pets"})
			Expect(lastPath).To(ContainSubstring("group=pets"))
		})

		It("drops group criteria when the fetch is already group scoped", func() {
			list("cars", SearchCriteria{Attribute: "group", Value: "pets"})
			Expect(strings.Count(lastPath, "group=")).To(Equal(1))
			Expect(lastPath).To(ContainSubstring("group=cars"))
		})

		It("filters type client side", func() {
			entries := list("pets", SearchCriteria{Attribute: "type", Value: "AVRO"})
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Artifact).To(Equal("cat"))
			Expect(lastPath).NotTo(ContainSubstring("type="))
		})

		It("filters state client side", func() {
			entries := list("pets", SearchCriteria{Attribute: "state", Value: "DEPRECATED"})
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Artifact).To(Equal("dog"))
		})

		It("filters on label membership", func() {
			entries := list("pets", SearchCriteria{Attribute: "labels", Value: "prod"})
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Artifact).To(Equal("cat"))
		})

		It("filters on property key or key=value", func() {
			entries := list("pets", SearchCriteria{Attribute: "properties", Value: "team"})
			Expect(entries).To(HaveLen(2))

			entries = list("pets", SearchCriteria{Attribute: "properties", Value: "team=web"})
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Artifact).To(Equal("dog"))
		})
	})

	Context("paging", func() {
		It("requests a single page with offset 0", func() {
			list("", SearchCriteria{})
			Expect(lastPath).To(ContainSubstring("limit=50"))
			Expect(lastPath).To(ContainSubstring("offset=0"))
		})
	})

	Describe("Create", func() {
		It("POSTs with ifExists=FAIL and registry headers", func() {
			var (
				method  string
				headers http.Header
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method = r.Method
				headers = r.Header.Clone()
				lastPath = r.URL.String()
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			catalog := NewCatalog(testClient(srv), 50)
			err := catalog.Create(context.Background(), ArtifactSpec{
				Group:       "pets",
				ID:          "cat",
				Type:        "AVRO",
				Version:     "1",
				Body:        []byte(`{"type":"record"}`),
				ContentType: "application/json",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(method).To(Equal(http.MethodPost))
			Expect(lastPath).To(Equal("/groups/pets/artifacts?ifExists=FAIL"))
			Expect(headers.Get("X-Registry-ArtifactId")).To(Equal("cat"))
			Expect(headers.Get("X-Registry-ArtifactType")).To(Equal("AVRO"))
			Expect(headers.Get("X-Registry-Version")).To(Equal("1"))
		})
	})
})
