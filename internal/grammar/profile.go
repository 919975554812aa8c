// Package grammar describes the language-version feature set that the
// classifier consults. A Profile is an immutable value passed down the call
// chain; there is no package-level state.
package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is a language version encoded as major*10+minor ("7.3" -> 73).
type Version uint16

const (
	V6     Version = 60
	V7     Version = 70
	V7_3   Version = 73
	V8     Version = 80
	V12    Version = 120
	Latest Version = 0xFFFF
)

// Default is the version used when nothing is configured.
const Default = V7_3

var ErrBadVersion = errors.New("invalid language version")

func (v Version) String() string {
	if v == Latest {
		return "latest"
	}
	if v%10 == 0 {
		return strconv.Itoa(int(v / 10))
	}
	return fmt.Sprintf("%d.%d", v/10, v%10)
}

// ParseVersion accepts "6", "7", "7.3", "12", "latest" and the same forms
// prefixed with "csharp" or "cs".
func ParseVersion(s string) (Version, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimPrefix(strings.TrimPrefix(t, "csharp"), "cs")
	if t == "latest" || t == "preview" {
		return Latest, nil
	}
	major, minor, hasMinor := strings.Cut(t, ".")
	maj, err := strconv.Atoi(major)
	if err != nil || maj < 1 || maj > 99 {
		return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
	}
	mnr := 0
	if hasMinor {
		mnr, err = strconv.Atoi(minor)
		if err != nil || mnr < 0 || mnr > 9 {
			return 0, fmt.Errorf("%w: %q", ErrBadVersion, s)
		}
	}
	return Version(maj*10 + mnr), nil
}

// Profile is the grammar feature set of one analysis.
type Profile struct {
	Version Version
}

// NewProfile returns the profile for v; zero means Default.
func NewProfile(v Version) Profile {
	if v == 0 {
		v = Default
	}
	return Profile{Version: v}
}

func (p Profile) at(v Version) bool { return p.Version >= v }

// Tuples enables tuple literals and tuple types: (a, b).
func (p Profile) Tuples() bool { return p.at(V7) }

// StackAllocInitializers enables stackalloc int[] { 1, 2 }.
func (p Profile) StackAllocInitializers() bool { return p.at(V7_3) }

// ImplicitStackAlloc enables stackalloc[] { 1, 2 }.
func (p Profile) ImplicitStackAlloc() bool { return p.at(V7_3) }

// CollectionExpressions enables [1, 2, 3] as an expression.
func (p Profile) CollectionExpressions() bool { return p.at(V12) }

func (p Profile) String() string { return "C# " + p.Version.String() }
