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

// Package com wires COM reference counting into the ownership protocol.
//
// Every DirectWrite interface starts with the IUnknown vtable. Unknown
// models that prefix, so a wrapper for any DirectWrite interface can adopt
// its pointer through Adopt and get exactly-once Release for free. The
// package is only built on Windows.
package com
