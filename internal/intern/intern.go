// Package intern provides string interning for go-argv option keys.
// Parse interns every option token so repeated keys across invocations share
// one backing string.
package intern

import (
	"sync"
)

// StringInterner provides thread-safe string interning
type StringInterner struct {
	strings map[string]string
	limit   int // 0 = unbounded
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s.
func (si *StringInterner) Intern(s string) string {
	// Fast path: read lock for common case
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := si.strings[s]; exists {
		return interned
	}

	// Full: hand back the caller's string rather than grow without bound
	if si.limit > 0 && len(si.strings) >= si.limit {
		return s
	}

	si.strings[s] = s
	return s
}

// SetLimit caps the number of stored strings. Once reached, Intern returns
// its argument unchanged.
func (si *StringInterner) SetLimit(limit int) {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	si.limit = limit
}

// InternShort returns the option key "-<r>" for a single rune.
// ASCII letters and digits come from a static table and never allocate.
func (si *StringInterner) InternShort(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return shortOptionKeys[r-'a']
	case r >= 'A' && r <= 'Z':
		return shortOptionKeys[26+r-'A']
	case r >= '0' && r <= '9':
		return shortOptionKeys[52+r-'0']
	}
	return si.Intern("-" + string(r))
}

// PreIntern adds common strings to avoid allocation during parsing
func (si *StringInterner) PreIntern(strings []string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	for _, s := range strings {
		si.strings[s] = s
	}
}

// Stats returns the number of interned strings for monitoring.
func (si *StringInterner) Stats() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Clear removes all interned strings (useful for testing)
func (si *StringInterner) Clear() {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	clear(si.strings)
}

// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var shortOptionKeys = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

// CommonOptionKeys contains frequently used long option tokens for pre-interning
var CommonOptionKeys = []string{
	"--help", "--version", "--verbose", "--quiet", "--config", "--output",
	"--input", "--force", "--debug", "--port", "--host", "--name", "--timeout",
}

// GlobalInterner is the process-wide interner used by argv.Parse.
var GlobalInterner *StringInterner

//nolint:gochecknoinits // Global interner requires init for pre-interning
func init() {
	GlobalInterner = NewStringInterner(128)
	GlobalInterner.PreIntern(CommonOptionKeys)
	GlobalInterner.SetLimit(4096)
}

// Intern interns a string using the global interner
func Intern(s string) string {
	return GlobalInterner.Intern(s)
}

// InternShort returns the short option key for r using the global interner
func InternShort(r rune) string {
	return GlobalInterner.InternShort(r)
}
