/*
   Copyright 2025 The DIRPX Authors.

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

package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/fixture/apis"
)

// document is the YAML shape accepted by Load.
//
//	listSize: 3
//	stringLength: 12
//	maxDepth: 16
//	implicit: true
type document struct {
	ListSize     *int  `yaml:"listSize"`
	StringLength *int  `yaml:"stringLength"`
	MaxDepth     *int  `yaml:"maxDepth"`
	Implicit     *bool `yaml:"implicit"`
}

// Load decodes a YAML document onto the defaults. Keys absent from the document
// keep their default values. Options are applied after the document.
func Load(data []byte, opts ...Option) (apis.Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return apis.Config{}, errors.Wrap(err, "fixture(config): decode yaml")
	}
	var fromDoc []Option
	if doc.ListSize != nil {
		fromDoc = append(fromDoc, WithListSize(*doc.ListSize))
	}
	if doc.StringLength != nil {
		fromDoc = append(fromDoc, WithStringLength(*doc.StringLength))
	}
	if doc.MaxDepth != nil {
		fromDoc = append(fromDoc, WithMaxDepth(*doc.MaxDepth))
	}
	if doc.Implicit != nil {
		fromDoc = append(fromDoc, WithImplicit(*doc.Implicit))
	}
	return NewConfig(append(fromDoc, opts...)...), nil
}
