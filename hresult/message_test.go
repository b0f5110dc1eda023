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

package hresult

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dirpx.dev/dwrite/internal/zlog"
)

// unassigned sits in the customer range of a facility the platform never
// registers messages for.
var unassigned = FromWin32(0xA0FF0001)

func TestDescribe_WellKnown(t *testing.T) {
	msg, ok := Describe(E_ACCESSDENIED)
	require.True(t, ok)
	require.NotEmpty(t, strings.TrimSpace(msg))

	msg, ok = Describe(FromWin32(ERROR_ACCESS_DENIED))
	require.True(t, ok)
	require.NotEmpty(t, msg)
}

func TestDescribe_UnknownIsAbsent(t *testing.T) {
	msg, ok := Describe(unassigned)
	require.False(t, ok)
	require.Empty(t, msg)
}

func TestError_IncludesNameAndText(t *testing.T) {
	s := E_ACCESSDENIED.Error()
	require.True(t, strings.HasPrefix(s, "0x80070005 (E_ACCESSDENIED): "), s)
	require.False(t, strings.HasSuffix(s, "\n"))

	require.Equal(t, unassigned.String(), unassigned.Error())
}

func TestMessages_And_Chain(t *testing.T) {
	local := Messages{
		E_FAIL:     "render pipeline failed",
		E_ABORT:    "",
		unassigned: "plugin specific failure",
	}

	msg, ok := local.Message(E_FAIL)
	require.True(t, ok)
	require.Equal(t, "render pipeline failed", msg)

	_, ok = local.Message(E_ABORT)
	require.False(t, ok, "empty text counts as absent")

	chained := Chain(nil, local, System())
	msg, ok = chained.Message(unassigned)
	require.True(t, ok)
	require.Equal(t, "plugin specific failure", msg)

	msg, ok = chained.Message(E_ACCESSDENIED)
	require.True(t, ok)
	require.NotEmpty(t, msg)

	_, ok = Chain().Message(E_FAIL)
	require.False(t, ok)
}

func TestMessageFunc(t *testing.T) {
	calls := 0
	src := MessageFunc(func(hr HRESULT) (string, bool) {
		calls++
		return hr.String(), true
	})
	msg, ok := src.Message(E_POINTER)
	require.True(t, ok)
	require.Equal(t, "0x80004003", msg)
	_, _ = src.Message(E_POINTER)
	require.Equal(t, 2, calls, "sources are asked on every lookup")
}

func TestDecodeLossy(t *testing.T) {
	require.Equal(t, "Access is denied.\r\n", decodeLossy([]byte("Access is denied.\r\n")))
	require.Equal(t, "ok\uFFFD", decodeLossy([]byte{'o', 'k', 0xFF}))
	require.Equal(t, "a\uFFFDb", decodeLossy([]byte{'a', 0xC3, 'b'}))
	require.Equal(t, "", decodeLossy(nil))
}

func TestError_DoesNotLogMissingText(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zlog.Set(zap.New(core))
	t.Cleanup(func() { zlog.Set(nil) })

	for i := 0; i < 3; i++ {
		require.Equal(t, unassigned.String(), unassigned.Error())
	}
	require.Zero(t, logs.Len(), "formatting an error must not log")

	_, ok := Describe(unassigned)
	require.False(t, ok)
	require.Equal(t, 1, logs.FilterMessage("no diagnostic text").Len())
}
