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

package dwrite

import (
	"go.uber.org/zap"

	"dirpx.dev/dwrite/internal/zlog"
)

// SetLogger routes the module's debug output (handle adoption and release,
// missing diagnostic text) to l. Passing nil silences it again.
func SetLogger(l *zap.Logger) { zlog.Set(l) }

// Logger returns the logger installed with SetLogger.
func Logger() *zap.Logger { return zlog.L() }
