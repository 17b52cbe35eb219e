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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "fincore.yaml")
	require.NoError(t, ioutil.WriteFile(name, []byte(content), 0644))
	return name
}

func TestReadConfigFile(t *testing.T) {
	name := writeConfig(t, `
bytes: true
nodes: true
output: PAGES,FILE
windowPages: 1024
`)
	cfg, err := readConfigFile(name)
	require.NoError(t, err)
	assert.True(t, cfg.Bytes)
	assert.True(t, cfg.Nodes)
	assert.False(t, cfg.Drop)
	assert.Equal(t, "PAGES,FILE", cfg.Output)
	assert.Equal(t, 1024, cfg.WindowPages)
}

func TestReadConfigFileRejectsUnknownKeys(t *testing.T) {
	name := writeConfig(t, "windowsize: 10\n")
	_, err := readConfigFile(name)
	assert.Error(t, err)
}

func TestReadConfigFileMissing(t *testing.T) {
	_, err := readConfigFile(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}
