package idgen_test

import (
	"testing"

	"github.com/iho/dualstream/internal/adapter/idgen"
)

func TestULIDGenerator_Unique(t *testing.T) {
	gen := idgen.NewULIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		if len(id) != 26 {
			t.Fatalf("unexpected ULID length %d for %q", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
