package registry

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/curio/internal/config"
)

func testClient(server *httptest.Server) *Client {
	u, err := url.Parse(server.URL)
	Expect(err).NotTo(HaveOccurred())
	host, portStr, err := net.SplitHostPort(u.Host)
	Expect(err).NotTo(HaveOccurred())
	port, err := strconv.Atoi(portStr)
	Expect(err).NotTo(HaveOccurred())

	return NewClient(config.HTTPConfig{Host: host, Port: port, Path: "/"})
}

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
	)

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	Context("status handling", func() {
		It("resolves 204 to an empty result without parsing", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}
			res, err := testClient(server).Request(context.Background(), "x", http.MethodPut, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Empty()).To(BeTrue())
		})

		It("classifies 404 as ErrNotFound with an empty result", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			}
			res, err := testClient(server).Get(context.Background(), "x")
			Expect(err).To(MatchError(ErrNotFound))
			Expect(res.Empty()).To(BeTrue())
		})

		It("classifies 400, 401 and 409", func() {
			for code, want := range map[int]error{
				http.StatusBadRequest:   ErrBadRequest,
				http.StatusUnauthorized: ErrUnauthorized,
				http.StatusConflict:     ErrConflict,
			} {
				code := code
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
				}
				_, err := testClient(server).Get(context.Background(), "x")
				Expect(err).To(MatchError(want))
			}
		})

		It("returns a StatusError for other failure codes", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}
			_, err := testClient(server).Get(context.Background(), "x")
			var statusErr *StatusError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("bodies", func() {
		It("serializes non-string bodies to JSON", func() {
			var got string
			handler = func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				got = string(raw)
				w.WriteHeader(http.StatusNoContent)
			}
			body := map[string]string{"state": "DISABLED"}
			_, err := testClient(server).Request(context.Background(), "x", http.MethodPut, body, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(MatchJSON(`{"state":"DISABLED"}`))
		})

		It("passes string bodies through as-is", func() {
			var got string
			handler = func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				got = string(raw)
				w.WriteHeader(http.StatusNoContent)
			}
			_, err := testClient(server).Request(context.Background(), "x", http.MethodPost, "openapi: 3.0.0", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal("openapi: 3.0.0"))
		})

		It("normalizes yaml-ish content types to application/x-yaml", func() {
			var got string
			handler = func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Content-Type")
				w.WriteHeader(http.StatusNoContent)
			}
			headers := map[string]string{"Content-Type": "application/yaml"}
			_, err := testClient(server).Request(context.Background(), "x", http.MethodPost, "a: b", headers)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal("application/x-yaml"))

			headers = map[string]string{"Content-Type": "text/yml"}
			_, err = testClient(server).Request(context.Background(), "x", http.MethodPost, "a: b", headers)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal("application/x-yaml"))
		})

		It("leaves the caller's header map untouched", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}
			headers := map[string]string{"Content-Type": "application/yaml"}
			_, err := testClient(server).Request(context.Background(), "x", http.MethodPost, "a: b", headers)
			Expect(err).NotTo(HaveOccurred())
			Expect(headers["Content-Type"]).To(Equal("application/yaml"))
		})
	})

	Context("response parsing", func() {
		It("decodes JSON bodies", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"type":"AVRO"}`))
			}
			res, err := testClient(server).Get(context.Background(), "x")
			Expect(err).NotTo(HaveOccurred())
			var out struct {
				Type string `json:"type"`
			}
			Expect(res.Decode(&out)).To(Succeed())
			Expect(out.Type).To(Equal("AVRO"))
		})

		It("keeps non-JSON bodies as raw text", func() {
			// the registry labels yaml schema bodies as JSON
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("openapi: 3.0.0\n"))
			}
			res, err := testClient(server).Get(context.Background(), "x")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Structured()).To(BeFalse())
			Expect(res.Text()).To(Equal("openapi: 3.0.0\n"))
		})
	})

	It("surfaces transport errors", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {}
		client := testClient(server)
		server.Close()
		_, err := client.Get(context.Background(), "x")
		Expect(err).To(HaveOccurred())
	})
})
