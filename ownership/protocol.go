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

// Builder constructs a wrapper of type T from an argument bundle of type A.
type Builder[A, T any] interface {
	Build(args A) (T, error)
}

// BuildFunc adapts a function to Builder.
type BuildFunc[A, T any] func(args A) (T, error)

// Build implements Builder.
func (f BuildFunc[A, T]) Build(args A) (T, error) { return f(args) }

// Exposer is implemented by wrappers that lend their raw handle of type R.
type Exposer[R any] interface {
	Raw() R
}

// Adopter wraps a raw handle of type R into a T that owns it.
type Adopter[R, T any] func(raw R) T

// Releaser hands a raw handle back to whoever allocated it, e.g. by
// calling IUnknown::Release.
type Releaser[R any] func(raw R) error

// Expose returns w's raw handle without affecting ownership. w must stay
// reachable for as long as the handle is used; see Owned.Use.
func Expose[R any](w Exposer[R]) R { return w.Raw() }

// Build constructs a wrapper through b.
func Build[A, T any](b Builder[A, T], args A) (T, error) { return b.Build(args) }
