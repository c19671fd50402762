package compat

import (
	"sync"
	"testing"
)

func TestCache_Idempotent(t *testing.T) {
	c := NewCache()

	t1 := c.Table(testPalette)
	t2 := c.Table(testPalette)
	if t1 != t2 {
		t.Error("second Table() call rebuilt instead of returning the cached table")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_OrderSensitive(t *testing.T) {
	c := NewCache()

	a := c.Table([]string{"a_10000000.png", "b_00100000.png"})
	b := c.Table([]string{"b_00100000.png", "a_10000000.png"})
	if a == b {
		t.Error("reordered palette returned the same table")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := NewCache()

	t1 := c.Table(testPalette)
	c.Invalidate(testPalette)
	t2 := c.Table(testPalette)
	if t1 == t2 {
		t.Error("Invalidate did not drop the cached table")
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
}

func TestCache_ConcurrentBuilds(t *testing.T) {
	c := NewCache()

	const goroutines = 16
	tables := make([]*Table, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = c.Table(testPalette)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if tables[i] != tables[0] {
			t.Fatal("concurrent builds returned different tables")
		}
	}
}

func TestSignature(t *testing.T) {
	a := Signature([]string{"x", "y"})
	b := Signature([]string{"y", "x"})
	if a == b {
		t.Error("Signature should depend on order")
	}
	if Signature(nil) != "" {
		t.Errorf("Signature(nil) = %q, want empty", Signature(nil))
	}
}
