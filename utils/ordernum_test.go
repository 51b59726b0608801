package utils

import (
	"testing"
	"time"
)

func TestNewOrderNumberShape(t *testing.T) {
	n := NewOrderNumber()
	if len(n) != 14+8 {
		t.Fatalf("unexpected length %d: %q", len(n), n)
	}
	if _, err := time.Parse("20060102150405", n[:14]); err != nil {
		t.Errorf("prefix is not a timestamp: %q", n[:14])
	}
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := NewOrderNumber()
		if seen[n] {
			t.Fatalf("collision after %d numbers: %q", i, n)
		}
		seen[n] = true
	}
}
