// Package registry maps known MSCF archive file names to the semantic names
// of the stereo pairs they contain. The archives carry no names of their own;
// the lists below were assigned out of band, one name per pair, in entry order.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownArchive is returned when an identity has no registered names.
var ErrUnknownArchive = errors.New("unknown archive")

var knownArchives = map[string][]string{
	"bgm.mscf": {
		"BGM_TITLE",
		"BGM_MENU",
		"BGM_FEVER",
		"BGM_CHILL",
		"BGM_CONGRA",
		"BGM_ENDING",
		"BGM_LUIGI_1",
		"BGM_LUIGI_2",
		"BGM_SB_FEVER",
		"BGM_SB_CHILL",
		"BGM_TEST_PAN",
	},
	"jgl.mscf": {
		"JGL_GAMESTART",
		"JGL_GAMEOVER",
		"JGL_STGCLEAR_1",
		"JGL_STGCLEAR_2",
		"JGL_STGCLEAR_3",
		"JGL_STGCLEAR_SUB1",
		"JGL_STGCLEAR_SUB2",
		"JGL_STGCLEAR_SUB3",
		"JGL_VSWIN",
		"JGL_UNUSED", // never referenced by the game
	},
}

// BoundsError reports a pair index with no registered name.
type BoundsError struct {
	Identity string
	Pair     int
	Len      int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: no name registered for pair %d (%d names known)", e.Identity, e.Pair, e.Len)
}

// Names is the ordered name list of one archive identity.
type Names struct {
	identity string
	names    []string
}

// Lookup returns the names registered for identity.
// Matching is exact: no path stripping and no case folding.
func Lookup(identity string) (Names, bool) {
	names, ok := knownArchives[identity]
	if !ok {
		return Names{}, false
	}
	return Names{identity: identity, names: names}, true
}

// Resolve is Lookup with ErrUnknownArchive instead of a bool.
func Resolve(identity string) (Names, error) {
	n, ok := Lookup(identity)
	if !ok {
		return Names{}, fmt.Errorf("%w: %s", ErrUnknownArchive, identity)
	}
	return n, nil
}

// Identities returns all registered identities, sorted.
func Identities() []string {
	ids := make([]string, 0, len(knownArchives))
	for id := range knownArchives {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Identity returns the archive file name these names belong to.
func (n Names) Identity() string {
	return n.identity
}

// Len returns the number of stereo pairs with a registered name.
func (n Names) Len() int {
	return len(n.names)
}

// Pair returns the name of stereo pair i.
func (n Names) Pair(i int) (string, error) {
	if i < 0 || i >= len(n.names) {
		return "", &BoundsError{Identity: n.identity, Pair: i, Len: len(n.names)}
	}
	return n.names[i], nil
}

// ForEntry returns the name of physical entry i.
// Entries 2k and 2k+1 are the left and right halves of pair k.
func (n Names) ForEntry(i int) (string, error) {
	if i < 0 {
		return "", &BoundsError{Identity: n.identity, Pair: -1, Len: len(n.names)}
	}
	return n.Pair(i / 2)
}

// All returns a copy of the registered names.
func (n Names) All() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}
