// Package intern provides canonical string storage for flag names, so the
// registry indexes and the matcher share one copy of every name no matter
// how many tokens mention it.
package intern

import "sync"

// Table is a thread-safe string intern table.
type Table struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewTable creates an empty intern table.
func NewTable() *Table {
	return &Table{strings: make(map[string]string, 32)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (t *Table) Intern(s string) string {
	t.mu.RLock()
	if canonical, ok := t.strings[s]; ok {
		t.mu.RUnlock()
		return canonical
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if canonical, ok := t.strings[s]; ok {
		return canonical
	}
	t.strings[s] = s
	return s
}

// Len returns the number of interned strings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// global is the process-wide table used for flag names.
var global = NewTable()

// Intern interns s in the process-wide table.
func Intern(s string) string {
	return global.Intern(s)
}
