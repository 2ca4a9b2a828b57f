package benchmark

import (
	"testing"

	intern "github.com/dzonerzy/go-claw/internal/intern"
)

// Category: intern

func BenchmarkTable_Intern(b *testing.B) {
	table := intern.NewTable()
	names := []string{"name", "verbose", "output", "port", "config"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Intern(names[i%len(names)])
	}
}

func BenchmarkGlobalIntern(b *testing.B) {
	names := []string{"name", "verbose", "output", "port", "config"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intern.Intern(names[i%len(names)])
	}
}
