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

package ownership

import (
	"errors"
	"io"
)

// Scope closes a group of owners in reverse order of registration, the
// way dependent native objects (factory, then format, then layout) must be
// torn down.
type Scope struct {
	closers []io.Closer
}

// Track registers c and returns it.
func Track[C io.Closer](s *Scope, c C) C {
	s.closers = append(s.closers, c)
	return c
}

// Len returns the number of registered closers not yet closed.
func (s *Scope) Len() int { return len(s.closers) }

// Close closes every registered closer, last first, and joins their
// errors. The scope is empty afterwards.
func (s *Scope) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
