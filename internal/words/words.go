// internal/words/words.go
//
// Word pool management for the duel engine.
//
// Responsibilities:
//   - Load per-length word pools (4 and 5 letters) from environment-provided
//     files or fall back to embedded defaults.
//   - Maintain lookup sets for guess validation.
//   - Supply utilities: RandomWord, IsValid, Pool, Stats.
//
// Pools:
//   - Each supported length has a single pool that serves both as the
//     AI candidate pool and the offline validation fallback when the
//     dictionary collaborator is unreachable.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE_4 / WORDS_FILE_5 are set, load the corresponding
//      pool from that file.
//   2. Otherwise fall back to the embedded defaults.
//
// Constraints:
//   • Words must be alphabetic a–z of exactly the pool's length.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
)

// SupportedLengths enumerates the word lengths the duel ruleset allows.
var SupportedLengths = []int{4, 5}

//go:embed default_answers_4.txt
var embeddedFour string

//go:embed default_answers_5.txt
var embeddedFive string

var (
	initOnce   sync.Once
	pools      map[int][]string            // length → pool
	poolSets   map[int]map[string]struct{} // length → lookup set
	initialErr error
)

// Init loads word pools exactly once.
// Returns an error if any supported pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		pools = make(map[int][]string)
		poolSets = make(map[int]map[string]struct{})

		sources := map[int]struct {
			envVar   string
			embedded string
		}{
			4: {"WORDS_FILE_4", embeddedFour},
			5: {"WORDS_FILE_5", embeddedFive},
		}

		for length, src := range sources {
			var list []string
			if path := os.Getenv(src.envVar); path != "" {
				var err error
				list, err = readWordFile(path, length)
				if err != nil {
					initialErr = err
					return
				}
			} else {
				list = normalizeLines(src.embedded, length)
			}
			if len(list) == 0 {
				initialErr = fmt.Errorf("words: pool for length %d is empty", length)
				return
			}
			pools[length] = list
			poolSets[length] = toSet(list)
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid alphabetic words of the requested length.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase words of the requested length.
func normalizeLines(s string, length int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// SupportedLength reports whether the duel ruleset allows words of length n.
func SupportedLength(n int) bool {
	for _, l := range SupportedLengths {
		if l == n {
			return true
		}
	}
	return false
}

// Pool returns the word pool for the given length, or nil if unsupported.
// The returned slice must not be mutated by callers.
func Pool(length int) []string {
	return pools[length]
}

// IsValid reports whether w is a known word of a supported length.
func IsValid(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	set, ok := poolSets[len(w)]
	if !ok {
		return false
	}
	_, ok = set[w]
	return ok
}

// RandomWord returns a cryptographically random word from the pool for the
// given length. Returns an error for unsupported or unloaded lengths.
func RandomWord(length int) (string, error) {
	pool := pools[length]
	if len(pool) == 0 {
		return "", errors.New("words: no pool for length")
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	return pool[nBig.Int64()], nil
}

// Stats returns the pool size per supported length.
func Stats() map[int]int {
	out := make(map[int]int, len(pools))
	for l, p := range pools {
		out[l] = len(p)
	}
	return out
}
