// Package carddavtest предоставляет in-memory CardDAV сервер для тестов.
package carddavtest

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

// BasePath путь коллекции на тестовом сервере
const BasePath = "/dav/contacts/"

var hrefRe = regexp.MustCompile(`<(?:[A-Za-z]+:)?href>([^<]+)</(?:[A-Za-z]+:)?href>`)

// Resource один ресурс на сервере
type Resource struct {
	ETag         string
	LastModified string
	Body         string
}

// Server тестовый CardDAV сервер. Отвечает с префиксами d: и card:.
type Server struct {
	*httptest.Server
	resources map[string]Resource
	failures  map[string][]int
	Username  string
	Password  string
	DAV       string // значение заголовка DAV в ответе на OPTIONS
	raw       string
	requests  []string
	version   int
	mu        sync.Mutex

	// DisableMultiget заставляет сервер отвечать 501 на addressbook-multiget
	DisableMultiget bool
}

// NewServer запускает сервер и закрывает его по завершении теста
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		resources: make(map[string]Resource),
		failures:  make(map[string][]int),
		DAV:       "1, 3, addressbook",
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	tb.Cleanup(s.Close)
	return s
}

// CollectionURL URL коллекции
func (s *Server) CollectionURL() string {
	return s.URL + BasePath
}

// Put создаёт или заменяет ресурс, выдавая новый etag
func (s *Server) Put(id, body string) Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putLocked(id, body)
}

// Set сохраняет ресурс с заданными токенами
func (s *Server) Set(id string, r Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[id] = r
}

// Get возвращает ресурс
func (s *Server) Get(id string) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resources[id]
	return r, ok
}

// Remove удаляет ресурс
func (s *Server) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resources, id)
}

// IDs отсортированный список ресурсов
func (s *Server) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.resources))
	for id := range s.resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FailNext заставляет следующий запрос с методом method вернуть status
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = append(s.failures[method], status)
}

// SetRawListing задаёт тело ответа на PROPFIND и REPORT addressbook-query
func (s *Server) SetRawListing(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = body
}

// Count количество запросов с методом method
func (s *Server) Count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if strings.HasPrefix(r, method+" ") {
			n++
		}
	}
	return n
}

// Requests журнал запросов в виде "METHOD path"
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) putLocked(id, body string) Resource {
	s.version++
	r := Resource{
		ETag:         fmt.Sprintf("etag-%d", s.version),
		LastModified: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.version) * time.Minute).Format(http.TimeFormat),
		Body:         body,
	}
	s.resources[id] = r
	return r
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
	if queue := s.failures[r.Method]; len(queue) > 0 {
		s.failures[r.Method] = queue[1:]
		s.mu.Unlock()
		w.WriteHeader(queue[0])
		return
	}
	s.mu.Unlock()

	if s.Username != "" {
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="carddav"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}

	if !strings.HasPrefix(r.URL.Path, BasePath) && r.URL.Path+"/" != BasePath {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("DAV", s.DAV)
		w.Header().Set("Allow", "OPTIONS, GET, PUT, DELETE, PROPFIND, REPORT")
		w.WriteHeader(http.StatusOK)
	case "PROPFIND":
		s.handleListing(w, false)
	case "REPORT":
		s.handleReport(w, r)
	case http.MethodGet:
		s.handleGet(w, r)
	case http.MethodPut:
		s.handlePut(w, r)
	case http.MethodDelete:
		s.handleDelete(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleListing(w http.ResponseWriter, includeBodies bool) {
	s.mu.Lock()
	raw := s.raw
	s.mu.Unlock()
	if raw != "" {
		writeXML(w, raw)
		return
	}
	s.writeMultistatus(w, s.IDs(), nil, true, includeBodies)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	req := string(body)

	if !strings.Contains(req, "addressbook-multiget") {
		s.handleListing(w, strings.Contains(req, "address-data"))
		return
	}
	if s.DisableMultiget {
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	var found, missing []string
	for _, m := range hrefRe.FindAllStringSubmatch(req, -1) {
		id := idFromPath(m[1])
		if _, ok := s.Get(id); ok {
			found = append(found, id)
		} else {
			missing = append(missing, id)
		}
	}
	s.writeMultistatus(w, found, missing, false, true)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	res, ok := s.Get(idFromPath(r.URL.Path))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("ETag", `"`+res.ETag+`"`)
	_, _ = io.WriteString(w, res.Body)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	id := idFromPath(r.URL.Path)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.resources[id]
	if exists && r.Header.Get("If-None-Match") == "*" {
		w.WriteHeader(http.StatusPreconditionFailed)
		return
	}
	res := s.putLocked(id, string(body))
	w.Header().Set("ETag", `"`+res.ETag+`"`)
	if exists {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[id]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(s.resources, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeMultistatus(w http.ResponseWriter, ids, missing []string, withSelf, includeBodies bool) {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<d:multistatus xmlns:d="DAV:" xmlns:card="urn:ietf:params:xml:ns:carddav">`)
	if withSelf {
		b.WriteString(`<d:response><d:href>` + BasePath + `</d:href><d:propstat><d:prop>`)
		b.WriteString(`<d:resourcetype><d:collection/><card:addressbook/></d:resourcetype>`)
		b.WriteString(`</d:prop><d:status>HTTP/1.1 200 OK</d:status></d:propstat></d:response>`)
	}
	for _, id := range ids {
		res, ok := s.Get(id)
		if !ok {
			continue
		}
		b.WriteString(`<d:response><d:href>` + BasePath + url.PathEscape(id) + `.vcf</d:href><d:propstat><d:prop>`)
		b.WriteString(`<d:getetag>"` + res.ETag + `"</d:getetag>`)
		b.WriteString(`<d:getlastmodified>` + res.LastModified + `</d:getlastmodified>`)
		b.WriteString(`<d:getcontenttype>text/vcard; charset=utf-8</d:getcontenttype>`)
		if includeBodies {
			b.WriteString(`<card:address-data>`)
			_ = xml.EscapeText(&b, []byte(res.Body))
			b.WriteString(`</card:address-data>`)
		}
		b.WriteString(`</d:prop><d:status>HTTP/1.1 200 OK</d:status></d:propstat></d:response>`)
	}
	for _, id := range missing {
		b.WriteString(`<d:response><d:href>` + BasePath + url.PathEscape(id) + `.vcf</d:href>`)
		b.WriteString(`<d:status>HTTP/1.1 404 Not Found</d:status></d:response>`)
	}
	b.WriteString(`</d:multistatus>`)
	writeXML(w, b.String())
}

func writeXML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", `application/xml; charset="utf-8"`)
	w.WriteHeader(http.StatusMultiStatus)
	_, _ = io.WriteString(w, body)
}

func idFromPath(p string) string {
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}
	return strings.TrimSuffix(path.Base(p), ".vcf")
}
