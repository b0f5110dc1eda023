/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dwrite/hresult"
)

// Rules is the YAML form of a mapper configuration.
//
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	facilities:
//	  - facility: DWRITE
//	    http: 502
//	rules:
//	  - hresult: E_INVALIDARG
//	    http: 400
//	    grpc: INVALID_ARGUMENT
//	    prefixes:
//	      - op: IDWriteFactory.CreateTextFormat
//	        http: 422
//	  - hresult: "0x80004004"
//	    override: true
//	    http: 499
//
// HRESULTs accept anything hresult.Parse does. gRPC codes accept the
// canonical upper-case names or numbers. A zero or missing status leaves
// that transport unchanged.
type Rules struct {
	Fallback   *FallbackRule  `yaml:"fallback,omitempty"`
	Facilities []FacilityRule `yaml:"facilities,omitempty"`
	Rules      []CodeRule     `yaml:"rules,omitempty"`
}

// FallbackRule replaces the statuses for unmatched failure codes.
type FallbackRule struct {
	HTTP int      `yaml:"http,omitempty"`
	GRPC GRPCCode `yaml:"grpc,omitempty"`
}

// FacilityRule sets per-facility defaults.
type FacilityRule struct {
	Facility string   `yaml:"facility"`
	HTTP     int      `yaml:"http,omitempty"`
	GRPC     GRPCCode `yaml:"grpc,omitempty"`
}

// CodeRule sets the default (or, with Override, the override) for one
// HRESULT, plus optional per-operation prefix rules.
type CodeRule struct {
	HRESULT  string       `yaml:"hresult"`
	Override bool         `yaml:"override,omitempty"`
	HTTP     int          `yaml:"http,omitempty"`
	GRPC     GRPCCode     `yaml:"grpc,omitempty"`
	Prefixes []PrefixRule `yaml:"prefixes,omitempty"`
}

// PrefixRule maps an operation prefix to statuses.
type PrefixRule struct {
	Op   string   `yaml:"op"`
	HTTP int      `yaml:"http,omitempty"`
	GRPC GRPCCode `yaml:"grpc,omitempty"`
}

// GRPCCode is a gRPC status code in YAML. The zero value means "unset";
// codes.OK cannot be configured, since a failure never maps to it.
type GRPCCode codes.Code

// UnmarshalYAML accepts "INVALID_ARGUMENT" style names or numbers.
func (c *GRPCCode) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: grpc code must be a scalar", n.Line)
	}
	if v, err := strconv.ParseUint(n.Value, 10, 32); err == nil {
		*c = GRPCCode(v)
		return nil
	}
	var code codes.Code
	name := strings.ToUpper(strings.TrimSpace(n.Value))
	if err := code.UnmarshalJSON([]byte(strconv.Quote(name))); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = GRPCCode(code)
	return nil
}

// ErrRules is wrapped by every error LoadRules reports for well-formed
// YAML with invalid content.
var ErrRules = errors.New("mapper: invalid rules")

// LoadRules decodes a YAML rule file into options for New. Unknown fields
// are rejected.
func LoadRules(r io.Reader) ([]Option, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rules Rules
	if err := dec.Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode rules: %w", err)
	}
	return rules.Options()
}

// Options converts rs into mapper options.
func (rs Rules) Options() ([]Option, error) {
	var opts []Option

	if f := rs.Fallback; f != nil {
		http, grpc := f.HTTP, int(f.GRPC)
		opts = append(opts, func(b *builder) {
			if http != 0 {
				b.fallbackHTTP = http
			}
			if grpc != 0 {
				b.fallbackGRPC = grpc
			}
		})
	}

	for i, fr := range rs.Facilities {
		f, err := hresult.ParseFacility(fr.Facility)
		if err != nil {
			return nil, fmt.Errorf("%w: facilities[%d]: %w", ErrRules, i, err)
		}
		if fr.HTTP != 0 {
			opts = append(opts, WithHTTPFacility(f, fr.HTTP))
		}
		if fr.GRPC != 0 {
			opts = append(opts, WithGRPCFacility(f, int(fr.GRPC)))
		}
	}

	for i, cr := range rs.Rules {
		hr, err := hresult.Parse(cr.HRESULT)
		if err != nil {
			return nil, fmt.Errorf("%w: rules[%d]: %w", ErrRules, i, err)
		}
		httpOpt, grpcOpt := WithHTTPDefault, WithGRPCDefault
		if cr.Override {
			httpOpt, grpcOpt = WithHTTPOverride, WithGRPCOverride
		}
		if cr.HTTP != 0 {
			opts = append(opts, httpOpt(hr, cr.HTTP))
		}
		if cr.GRPC != 0 {
			opts = append(opts, grpcOpt(hr, int(cr.GRPC)))
		}
		for j, pr := range cr.Prefixes {
			if strings.TrimSpace(pr.Op) == "" {
				return nil, fmt.Errorf("%w: rules[%d].prefixes[%d]: empty op", ErrRules, i, j)
			}
			if pr.HTTP != 0 {
				opts = append(opts, WithHTTPPrefix(hr, pr.Op, pr.HTTP))
			}
			if pr.GRPC != 0 {
				opts = append(opts, WithGRPCPrefix(hr, pr.Op, int(pr.GRPC)))
			}
		}
	}
	return opts, nil
}
