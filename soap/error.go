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
	"errors"
	"fmt"
)

// ErrUnknownOperation indicates a call to an operation that the schema does not declare
var ErrUnknownOperation = errors.New("operation not declared in schema")

// ErrMissingURL indicates that no service URL was configured
var ErrMissingURL = errors.New("service URL is required")

// ErrMalformedResponse indicates a response body that is not a SOAP envelope
var ErrMalformedResponse = errors.New("malformed SOAP response")

// FaultError represents a SOAP fault returned by the remote service. The code
// and message are preserved exactly as received
type FaultError struct {
	Code    string
	Message string
	Detail  any
}

func (e *FaultError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("remote fault: %s", e.Message)
	}
	return fmt.Sprintf("remote fault %s: %s", e.Code, e.Message)
}

// HTTPError represents a non-success HTTP response that did not carry a SOAP fault
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %s", e.Status)
}
