// Copyright 2022 Intel Corporation. All Rights Reserved.
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

package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// fileConfig holds option defaults read from a YAML file. Command
// line flags given explicitly win over the file.
type fileConfig struct {
	Bytes       bool   `json:"bytes"`
	Drop        bool   `json:"drop"`
	Nodes       bool   `json:"nodes"`
	JSON        bool   `json:"json"`
	Raw         bool   `json:"raw"`
	NoHeadings  bool   `json:"noheadings"`
	Output      string `json:"output"`
	WindowPages int    `json:"windowPages"`
}

func readConfigFile(path string) (*fileConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %q", path)
	}
	cfg := &fileConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", path)
	}
	return cfg, nil
}
