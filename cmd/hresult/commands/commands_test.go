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

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecode_Table(t *testing.T) {
	out, err := run(t, "decode", "0x80070005")
	require.NoError(t, err)
	assert.Contains(t, out, "HRESULT")
	assert.Contains(t, out, "0x80070005")
	assert.Contains(t, out, "E_ACCESSDENIED")
	assert.Contains(t, out, "WIN32")
	assert.Contains(t, out, "failure")
}

func TestDecode_JSON(t *testing.T) {
	out, err := run(t, "decode", "E_INVALIDARG", "S_OK", "-o", "json")
	require.NoError(t, err)

	var infos []codeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "0x80070057", infos[0].HRESULT)
	require.NotNil(t, infos[0].Win32)
	assert.Equal(t, 87, *infos[0].Win32)
	assert.Equal(t, "success", infos[1].Severity)
}

func TestDecode_InvalidArg(t *testing.T) {
	_, err := run(t, "decode", "nope")
	require.Error(t, err)
}

func TestWin32_YAML(t *testing.T) {
	out, err := run(t, "win32", "5", "0x80070057", "-o", "yaml")
	require.NoError(t, err)

	var infos []win32Info
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "0x80070005", infos[0].HRESULT)
	assert.Equal(t, "0x80070057", infos[1].HRESULT, "HRESULT input passes through")
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DWRITE_E_NOCOLOR")
	assert.Contains(t, out, "S_FALSE")
}

func TestMap_Defaults(t *testing.T) {
	out, err := run(t, "map", "DWRITE_E_NOFONT", "IDWriteFontCollection.FindFamilyName", "-o", "json")
	require.NoError(t, err)

	var desc struct {
		HRESULT    string `json:"hresult"`
		Op         string `json:"op"`
		HTTPStatus int    `json:"http_status"`
		GRPCCode   int    `json:"grpc_code"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "0x88985002", desc.HRESULT)
	assert.Equal(t, "IDWriteFontCollection.FindFamilyName", desc.Op)
	assert.Equal(t, 404, desc.HTTPStatus)
	assert.Equal(t, 5, desc.GRPCCode) // NotFound
}

func TestMap_RulesAndExplain(t *testing.T) {
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte(`
rules:
  - hresult: E_INVALIDARG
    prefixes:
      - op: IDWriteFactory
        http: 422
`), 0o600))

	out, err := run(t, "map", "E_INVALIDARG", "IDWriteFactory.CreateTextFormat", "--rules", rules, "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, `http: source=prefix pattern="IDWriteFactory" -> 422`)
	assert.Contains(t, out, `grpc: source=default -> INVALIDARGUMENT(3)`)
}

func TestMap_Errors(t *testing.T) {
	_, err := run(t, "map", "E_FAIL", "not a valid op")
	require.Error(t, err)

	_, err = run(t, "map", "E_FAIL", "--rules", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to open rules"))
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, "decode", "S_OK", "-o", "xml")
	require.Error(t, err)
}
