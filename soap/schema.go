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

package soap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Schema is the parsed subset of a service's schema document needed to call it
type Schema struct {
	Namespace  string               `cbor:"1,keyasint"`
	Service    string               `cbor:"2,keyasint"`
	Operations map[string]Operation `cbor:"3,keyasint"`
	// Location is the endpoint address the service advertises, if any
	Location string `cbor:"4,keyasint"`
}

// Operation is a single operation declared by a schema
type Operation struct {
	Name   string `cbor:"1,keyasint"`
	Action string `cbor:"2,keyasint"`
}

// Operation returns the named operation
func (s *Schema) Operation(name string) (Operation, bool) {
	op, ok := s.Operations[name]
	return op, ok
}

// ActionFor returns the SOAPAction header value for an operation. Operations
// without a declared action use the schema namespace as the base action
func (s *Schema) ActionFor(op Operation) string {
	if op.Action != "" {
		return op.Action
	}
	base := s.Namespace
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + op.Name
}

type wsdlDefinitions struct {
	XMLName         xml.Name       `xml:"definitions"`
	Name            string         `xml:"name,attr"`
	TargetNamespace string         `xml:"targetNamespace,attr"`
	PortTypes       []wsdlPortType `xml:"portType"`
	Bindings        []wsdlBinding  `xml:"binding"`
	Services        []wsdlService  `xml:"service"`
}

type wsdlPortType struct {
	Operations []wsdlNamed `xml:"operation"`
}

type wsdlNamed struct {
	Name string `xml:"name,attr"`
}

type wsdlBinding struct {
	Operations []wsdlBindingOperation `xml:"operation"`
}

type wsdlBindingOperation struct {
	Name          string `xml:"name,attr"`
	SOAPOperation struct {
		Action string `xml:"soapAction,attr"`
	} `xml:"operation"`
}

type wsdlService struct {
	Name  string     `xml:"name,attr"`
	Ports []wsdlPort `xml:"port"`
}

type wsdlPort struct {
	Address struct {
		Location string `xml:"location,attr"`
	} `xml:"address"`
}

// ParseSchema parses a schema document
func ParseSchema(data []byte) (*Schema, error) {
	var defs wsdlDefinitions
	if err := xml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	s := &Schema{
		Namespace:  defs.TargetNamespace,
		Service:    defs.Name,
		Operations: make(map[string]Operation),
	}
	if len(defs.Services) > 0 {
		if defs.Services[0].Name != "" {
			s.Service = defs.Services[0].Name
		}
		for _, port := range defs.Services[0].Ports {
			if location := strings.TrimSpace(port.Address.Location); location != "" {
				s.Location = location
				break
			}
		}
	}
	for _, portType := range defs.PortTypes {
		for _, op := range portType.Operations {
			s.Operations[op.Name] = Operation{Name: op.Name}
		}
	}
	// Bindings carry the action, so they take precedence over the port type
	for _, binding := range defs.Bindings {
		for _, op := range binding.Operations {
			s.Operations[op.Name] = Operation{
				Name:   op.Name,
				Action: op.SOAPOperation.Action,
			}
		}
	}
	if len(s.Operations) == 0 {
		return nil, fmt.Errorf("parse schema: no operations declared")
	}
	return s, nil
}

// The cache holds encoded snapshots rather than *Schema values so that every
// client decodes its own copy
var schemaCache = struct {
	sync.Mutex
	entries map[string][]byte
}{
	entries: make(map[string][]byte),
}

func cachedSchema(url string) (*Schema, bool) {
	schemaCache.Lock()
	data, ok := schemaCache.entries[url]
	schemaCache.Unlock()
	if !ok {
		return nil, false
	}
	var s Schema
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func storeSchema(url string, s *Schema) error {
	data, err := cbor.Marshal(s)
	if err != nil {
		return err
	}
	schemaCache.Lock()
	schemaCache.entries[url] = data
	schemaCache.Unlock()
	return nil
}

// PurgeSchemaCache removes all cached schema documents
func PurgeSchemaCache() {
	schemaCache.Lock()
	defer schemaCache.Unlock()
	clear(schemaCache.entries)
}

func schemaURL(url string) string {
	if strings.Contains(url, "?") {
		return url + "&" + SchemaQuery
	}
	return url + "?" + SchemaQuery
}

func (c *Client) loadSchema(ctx context.Context) (*Schema, error) {
	if c.config.CacheSchema {
		if s, ok := cachedSchema(c.config.URL); ok {
			return s, nil
		}
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		schemaURL(c.config.URL),
		nil,
	)
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	s, err := ParseSchema(data)
	if err != nil {
		return nil, err
	}
	if c.config.CacheSchema {
		if err := storeSchema(c.config.URL, s); err != nil {
			c.logger.Warn(
				"failed to cache schema",
				"component", "soap",
				"url", c.config.URL,
				"error", err,
			)
		}
	}
	return s, nil
}
