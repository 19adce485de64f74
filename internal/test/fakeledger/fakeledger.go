// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fakeledger provides an in-process remote ledger for tests. It serves a
// schema document and accepts request envelopes for every service, records each
// call and answers with per-operation handlers configured by the test.
package fakeledger

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/blinklabs-io/gocyclos/soap"
)

// Namespace is the target namespace of every served schema
const Namespace = "http://services.webservices.cyclos.strohalm.nl/"

// Operations lists the operations declared by each service schema
var Operations = map[string][]string{
	"members": {
		"registerMember",
		"updateMember",
		"updateMemberGroup",
		"search",
		"fullTextSearch",
		"listManagedGroups",
	},
	"payments": {
		"doPayment",
	},
	"accounts": {
		"searchAccountHistory",
		"searchMultipleAccountHistory",
		"searchTransferTypes",
	},
	"access": {
		"isChannelEnabledForMember",
		"checkChannel",
		"changeChannels",
	},
}

// Request is a single recorded call
type Request struct {
	Service       string
	Path          string
	Operation     string
	Action        string
	ContentType   string
	ContentLength int64
	Username      string
	Password      string
	HasAuth       bool
	// Params is the decoded params element, or nil if the request had none
	Params map[string]any
	Body   []byte
}

// Param returns the named parameter
func (r Request) Param(name string) any {
	if r.Params == nil {
		return nil
	}
	return r.Params[name]
}

// Response is the answer to a single call
type Response struct {
	// Returns holds the inner XML of each return element. No entries means the
	// operation returns nothing
	Returns []string
	// Fault, when set, is sent instead of the returns with status 500
	Fault *soap.FaultError
	// StatusCode overrides the response status
	StatusCode int
}

// HandlerFunc answers a call
type HandlerFunc func(Request) Response

// Server is a fake remote ledger
type Server struct {
	*httptest.Server
	mutex         sync.Mutex
	handlers      map[string]HandlerFunc
	requests      []Request
	schemaFetches map[string]int
	locations     map[string]string
}

// New starts a new fake ledger. Calls without a handler get an empty response
func New() *Server {
	s := &Server{
		handlers:      make(map[string]HandlerFunc),
		schemaFetches: make(map[string]int),
		locations:     make(map[string]string),
	}
	r := chi.NewRouter()
	r.Get("/services/{service}", s.handleSchema)
	r.Post("/services/{service}", s.handleCall)
	r.Post("/endpoints/{service}", s.handleCall)
	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the base URL to configure clients with
func (s *Server) BaseURL() string {
	return s.URL
}

// Handle sets the handler for an operation
func (s *Server) Handle(service string, operation string, handlerFunc HandlerFunc) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.handlers[service+"/"+operation] = handlerFunc
}

// Requests returns all recorded calls in arrival order
func (s *Server) Requests() []Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	ret := make([]Request, len(s.requests))
	copy(ret, s.requests)
	return ret
}

// RequestsFor returns the recorded calls of one operation
func (s *Server) RequestsFor(service string, operation string) []Request {
	var ret []Request
	for _, req := range s.Requests() {
		if req.Service == service && req.Operation == operation {
			ret = append(ret, req)
		}
	}
	return ret
}

// SetLocation overrides the endpoint address advertised in the schema of a
// service. Calls are also accepted below /endpoints/ on this server
func (s *Server) SetLocation(service string, location string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.locations[service] = location
}

// SchemaFetches returns how many times the schema of a service was requested
func (s *Server) SchemaFetches(service string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.schemaFetches[service]
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	service := chi.URLParam(r, "service")
	operations, ok := Operations[service]
	if !ok || r.URL.RawQuery != "wsdl" {
		http.NotFound(w, r)
		return
	}
	s.mutex.Lock()
	s.schemaFetches[service]++
	location, ok := s.locations[service]
	s.mutex.Unlock()
	if !ok {
		location = "http://" + r.Host + r.URL.Path
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = io.WriteString(w, schemaDocument(service, operations, location))
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	service := chi.URLParam(r, "service")
	if _, ok := Operations[service]; !ok {
		http.NotFound(w, r)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	operation, value, err := soap.DecodeRequest(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := Request{
		Service:       service,
		Path:          r.URL.Path,
		Operation:     operation,
		Action:        r.Header.Get("SOAPAction"),
		ContentType:   r.Header.Get("Content-Type"),
		ContentLength: r.ContentLength,
		Body:          body,
	}
	req.Username, req.Password, req.HasAuth = r.BasicAuth()
	if m, ok := value.(map[string]any); ok {
		if params, ok := m["params"].(map[string]any); ok {
			req.Params = params
		}
	}
	s.mutex.Lock()
	s.requests = append(s.requests, req)
	handlerFunc := s.handlers[service+"/"+operation]
	s.mutex.Unlock()
	resp := Response{}
	if handlerFunc != nil {
		resp = handlerFunc(req)
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	if resp.Fault != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, faultEnvelope(resp.Fault))
		return
	}
	if resp.StatusCode != 0 {
		w.WriteHeader(resp.StatusCode)
	}
	_, _ = io.WriteString(w, responseEnvelope(operation, resp.Returns))
}

func schemaDocument(service string, operations []string, location string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(
		&sb,
		`<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" name="%sWebService" targetNamespace="%s">`,
		service,
		Namespace,
	)
	sb.WriteString(`<wsdl:portType name="` + service + `">`)
	for _, op := range operations {
		sb.WriteString(`<wsdl:operation name="` + op + `"/>`)
	}
	sb.WriteString(`</wsdl:portType>`)
	sb.WriteString(`<wsdl:binding name="` + service + `Binding">`)
	for _, op := range operations {
		sb.WriteString(`<wsdl:operation name="` + op + `"><soap:operation soapAction=""/></wsdl:operation>`)
	}
	sb.WriteString(`</wsdl:binding>`)
	sb.WriteString(`<wsdl:service name="` + service + `WebService">`)
	sb.WriteString(`<wsdl:port name="` + service + `Port" binding="` + service + `Binding">`)
	sb.WriteString(`<soap:address location="` + location + `"/>`)
	sb.WriteString(`</wsdl:port>`)
	sb.WriteString(`</wsdl:service>`)
	sb.WriteString(`</wsdl:definitions>`)
	return sb.String()
}

const envelopeHead = `<?xml version="1.0" encoding="UTF-8"?><soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><soap:Body>`

const envelopeTail = `</soap:Body></soap:Envelope>`

func responseEnvelope(operation string, returns []string) string {
	var sb strings.Builder
	sb.WriteString(envelopeHead)
	sb.WriteString(`<ns2:` + operation + `Response xmlns:ns2="` + Namespace + `">`)
	for _, ret := range returns {
		sb.WriteString(`<return>` + ret + `</return>`)
	}
	sb.WriteString(`</ns2:` + operation + `Response>`)
	sb.WriteString(envelopeTail)
	return sb.String()
}

func faultEnvelope(fault *soap.FaultError) string {
	var sb strings.Builder
	sb.WriteString(envelopeHead)
	sb.WriteString(`<soap:Fault><faultcode>`)
	_ = xml.EscapeText(&sb, []byte(fault.Code))
	sb.WriteString(`</faultcode><faultstring>`)
	_ = xml.EscapeText(&sb, []byte(fault.Message))
	sb.WriteString(`</faultstring></soap:Fault>`)
	sb.WriteString(envelopeTail)
	return sb.String()
}
