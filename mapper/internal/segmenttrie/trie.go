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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys (operation
// paths such as "IDWriteFactory.CreateTextFormat").
// Each node represents one segment; the wildcard "*" matches exactly one segment.
// The trie supports longest-prefix-match (LPM) with segment boundaries, so
// a more specific rule wins over a shorter one. Segments are case-sensitive.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the dotted prefix as inserted, set only when hasVal=true.
	// MatchWithPattern returns it without building strings during lookup.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"IDWriteFactory"
//	"IDWriteFactory.CreateTextFormat"
//	"*.CreateTextLayout"
//
// The wildcard "*" matches exactly one segment.
// A prefix made only of "*" segments is rejected, because it is too generic.
// Inserting the same prefix twice replaces the value.
// Returns ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix, true /* allowWildcard */)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the best (deepest) prefix match for a full key.
// Both exact segment matches and "*" wildcard branches are explored.
// If the key is malformed past some segment, matching stops there; prefixes
// that were already matched still count.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern returns the value and the stored rule pattern of the
// deepest match. It is used by Explain().
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	var best *Trie[T]
	bestDepth := -1
	t.walk(key, 0, 0, &best, &bestDepth)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// walk descends from t consuming key[off:], recording the deepest node with
// a value in best.
func (t *Trie[T]) walk(key string, off, depth int, best **Trie[T], bestDepth *int) {
	if t.hasVal && depth > *bestDepth {
		*bestDepth = depth
		*best = t
	}
	if off >= len(key) {
		return
	}
	end, ok := scanSegment(key, off)
	if !ok {
		return
	}
	seg := key[off:end] // substring; no heap alloc
	next := end
	if next < len(key) {
		next++ // skip '.'
	}
	if child, ok := t.children[seg]; ok {
		child.walk(key, next, depth+1, best, bestDepth)
	}
	if child, ok := t.children["*"]; ok {
		child.walk(key, next, depth+1, best, bestDepth)
	}
}

// scanSegment validates the segment starting at off and returns the offset
// one past its last byte. The segment must match [A-Za-z_][A-Za-z0-9_]*
// and be followed by '.' or the end of s.
func scanSegment(s string, off int) (int, bool) {
	if off >= len(s) || !isLead(s[off]) {
		return off, false
	}
	i := off + 1
	for i < len(s) && s[i] != '.' {
		if !isTail(s[i]) {
			return i, false
		}
		i++
	}
	return i, true
}

// splitAndValidate splits a dot-separated string into segments and validates
// each segment according to validSegment(). When allowWildcard=true,
// a segment that is exactly "*" is accepted.
// An empty string yields an empty, valid segment list.
func splitAndValidate(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [A-Za-z_][A-Za-z0-9_]*
func validSegment(seg string, allowWildcard bool) bool {
	if allowWildcard && seg == "*" {
		return true
	}
	end, ok := scanSegment(seg, 0)
	return ok && end == len(seg)
}

func isLead(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isTail(c byte) bool {
	return isLead(c) || (c >= '0' && c <= '9')
}
