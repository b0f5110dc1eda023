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
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"dirpx.dev/dwrite/internal/zlog"
)

var (
	// ErrZeroHandle is the panic value when adopting a zero handle.
	ErrZeroHandle = errors.New("ownership: zero handle")
	// ErrNoReleaser is the panic value when adopting without a releaser.
	ErrNoReleaser = errors.New("ownership: nil releaser")
	// ErrReleased is the panic value when a released handle is exposed or
	// detached.
	ErrReleased = errors.New("ownership: handle already released")
)

// State is the lifecycle position of an Owned handle.
type State uint8

const (
	StateUnowned State = iota
	StateOwned
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateUnowned:
		return "unowned"
	case StateOwned:
		return "owned"
	case StateReleased:
		return "released"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Owned holds exclusive ownership of one native handle.
type Owned[R comparable] struct {
	raw     R
	release Releaser[R]
	state   State
	cleanup runtime.Cleanup
}

// leaked is what the runtime cleanup gets. It must not point back at the
// Owned, or the Owned would never become unreachable.
type leaked[R comparable] struct {
	raw     R
	release Releaser[R]
}

// Adopt takes ownership of raw. release is called exactly once, by Close
// or by the runtime cleanup if the Owned is collected while still owning
// raw.
//
// Adopt panics with ErrZeroHandle for a zero handle and with ErrNoReleaser
// for a nil release. The caller asserts raw is not owned by anyone else.
func Adopt[R comparable](raw R, release Releaser[R]) *Owned[R] {
	var zero R
	if raw == zero {
		panic(ErrZeroHandle)
	}
	if release == nil {
		panic(ErrNoReleaser)
	}
	o := &Owned[R]{raw: raw, release: release, state: StateOwned}
	o.cleanup = runtime.AddCleanup(o, releaseLeaked[R], leaked[R]{raw: raw, release: release})
	log().Debug("adopt", zap.String("handle", fmt.Sprint(raw)))
	return o
}

// Raw returns the handle without transferring ownership. It panics with
// ErrReleased after Close or Detach.
//
// The leak cleanup may run as soon as o itself is unreachable, even while
// the returned handle is still inside a native call. Callers that hold only
// the raw handle must follow the call with runtime.KeepAlive(o), or borrow
// through Use instead.
func (o *Owned[R]) Raw() R {
	if o.state != StateOwned {
		panic(ErrReleased)
	}
	return o.raw
}

// Use lends the handle to fn and keeps o reachable until fn returns, so
// the leak cleanup cannot release the handle during the borrow. It returns
// ErrReleased after Close or Detach, without calling fn.
func (o *Owned[R]) Use(fn func(raw R) error) error {
	if o == nil || o.state != StateOwned {
		return ErrReleased
	}
	err := fn(o.raw)
	runtime.KeepAlive(o)
	return err
}

// State reports the current lifecycle position. A nil Owned is unowned.
func (o *Owned[R]) State() State {
	if o == nil {
		return StateUnowned
	}
	return o.state
}

// Released reports whether the handle has left this owner.
func (o *Owned[R]) Released() bool { return o.State() == StateReleased }

// Close releases the handle. Only the first call reaches the releaser;
// later calls return nil.
func (o *Owned[R]) Close() error {
	if o == nil || o.state != StateOwned {
		log().Debug("close on released handle")
		return nil
	}
	raw := o.raw
	o.finish()
	log().Debug("release", zap.String("handle", fmt.Sprint(raw)))
	if err := o.release(raw); err != nil {
		return fmt.Errorf("ownership: release %v: %w", raw, err)
	}
	return nil
}

// Detach gives up ownership without releasing and returns the handle. The
// caller becomes responsible for releasing it exactly once. It panics with
// ErrReleased if the handle was already released or detached.
func (o *Owned[R]) Detach() R {
	if o.state != StateOwned {
		panic(ErrReleased)
	}
	raw := o.raw
	o.finish()
	log().Debug("detach", zap.String("handle", fmt.Sprint(raw)))
	return raw
}

func (o *Owned[R]) finish() {
	var zero R
	o.cleanup.Stop()
	o.raw = zero
	o.state = StateReleased
}

func releaseLeaked[R comparable](l leaked[R]) {
	log().Warn("releasing handle of an unclosed owner", zap.String("handle", fmt.Sprint(l.raw)))
	if err := l.release(l.raw); err != nil {
		log().Error("release of unclosed owner failed", zap.Error(err))
	}
}

func log() *zap.Logger { return zlog.Named("ownership") }
