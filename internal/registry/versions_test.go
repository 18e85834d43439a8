package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Versions", func() {
	var (
		server    *httptest.Server
		metaHits  int
		listsBody string
	)

	sel := Selection{Group: "pets", Artifact: "cat"}

	BeforeEach(func() {
		metaHits = 0
		listsBody = `{"versions":[
			{"version":"1","name":"","type":"AVRO","state":"ENABLED","createdOn":"2023-01-01"},
			{"version":"1.0.10","name":"","type":"AVRO","state":"ENABLED","createdOn":"2023-02-01"},
			{"version":"2","name":"","type":"AVRO","state":"ENABLED","createdOn":"2023-03-01"}
		],"count":3}`
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasSuffix(r.URL.Path, "/meta"):
				metaHits++
				w.Write([]byte(`{"type":"OPENAPI"}`))
			case strings.HasSuffix(r.URL.Path, "/versions"):
				w.Write([]byte(listsBody))
			default:
				w.Write([]byte("openapi: 3.0.0\n"))
			}
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("List", func() {
		It("keeps the server's creation order by default", func() {
			versions := NewVersions(testClient(server), false)
			entries, err := versions.List(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Version).To(Equal("1"))
			Expect(entries[2].Version).To(Equal("2"))
		})

		It("reverses when the display flag is set, and double reversal is identity", func() {
			forward := NewVersions(testClient(server), false)
			backward := NewVersions(testClient(server), true)

			plain, err := forward.List(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			reversed, err := backward.List(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())

			Expect(reversed[0].Version).To(Equal(plain[len(plain)-1].Version))

			backward.ToggleReverse()
			again, err := backward.List(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(plain))
		})
	})

	Describe("Latest", func() {
		It("returns the most recently created, not the highest string", func() {
			versions := NewVersions(testClient(server), false)
			latest, err := versions.Latest(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest).To(Equal("2"))
		})
	})

	Describe("ArtifactType", func() {
		It("caches the lookup for the session", func() {
			versions := NewVersions(testClient(server), false)
			for i := 0; i < 3; i++ {
				typ, err := versions.ArtifactType(context.Background(), sel)
				Expect(err).NotTo(HaveOccurred())
				Expect(typ).To(Equal("OPENAPI"))
			}
			Expect(metaHits).To(Equal(1))
		})

		It("invalidates on artifact deletion", func() {
			versions := NewVersions(testClient(server), false)
			_, err := versions.ArtifactType(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(versions.DeleteArtifact(context.Background(), sel)).To(Succeed())
			_, err = versions.ArtifactType(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(metaHits).To(Equal(2))
		})
	})

	Describe("Open", func() {
		It("infers the extension from the type for non-JSON bodies", func() {
			versions := NewVersions(testClient(server), false)
			doc, err := versions.Open(context.Background(), sel)
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Ext).To(Equal("yml"))
			Expect(doc.Type).To(Equal("OPENAPI"))
			Expect(doc.Name).To(Equal("pets--cat--latest.yml"))
			Expect(doc.Body).To(Equal("openapi: 3.0.0\n"))
		})
	})

	Describe("Add", func() {
		It("POSTs the body with the version header", func() {
			var (
				gotVersion string
				gotPath    string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotVersion = r.Header.Get("X-Registry-Version")
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			versions := NewVersions(testClient(srv), false)
			err := versions.Add(context.Background(), sel, []byte("{}"), "application/json", "3")
			Expect(err).NotTo(HaveOccurred())
			Expect(gotVersion).To(Equal("3"))
			Expect(gotPath).To(Equal("/groups/pets/artifacts/cat/versions"))
		})
	})
})
