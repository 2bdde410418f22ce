package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/docrules/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID    int
	Name  string
	Value string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		item := TestItem{ID: 1, Name: "test", Value: "value1"}
		err := reg.Register("item1", item)

		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		item := TestItem{ID: 2, Name: "test2", Value: "value2"}
		err := reg.Register("", item)

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		item := TestItem{ID: 3, Name: "test3", Value: "value3"}
		err := reg.Register("item1", item)

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[TestItem]()
	item := TestItem{ID: 1, Name: "test", Value: "value1"}
	if err := reg.Register("item1", item); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("item1")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}
		if got != item {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get missing item", func(t *testing.T) {
		_, err := reg.Get("missing")
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() missing should return ErrNotFound, got %v", err)
		}
	})
}

func TestListPreservesInsertionOrder(t *testing.T) {
	reg := New[int]()

	names := []string{"zulu", "alpha", "mike", "bravo"}
	for i, name := range names {
		if err := reg.Register(name, i); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	got := reg.List()
	if len(got) != len(names) {
		t.Fatalf("List() returned %d names, want %d", len(got), len(names))
	}
	for i, name := range names {
		if got[i] != name {
			t.Errorf("List()[%d] = %q, want %q (insertion order)", i, got[i], name)
		}
	}
}

func TestRemove(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"a", "b", "c"} {
		if err := reg.Register(name, i); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	if err := reg.Remove("b"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got := reg.List()
	want := []string{"a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if err := reg.Remove("b"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Remove() twice should return ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	reg := New[int]()
	if err := reg.Register("x", 1); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	reg.Clear()

	if reg.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", reg.Count())
	}
	if len(reg.List()) != 0 {
		t.Errorf("List() after Clear = %v, want empty", reg.List())
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", n), n)
		}(i)
	}

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = reg.Get(fmt.Sprintf("item%d", n))
			_ = reg.Has(fmt.Sprintf("item%d", n))
		}(i)
	}

	wg.Wait()

	if reg.Count() != 50 {
		t.Errorf("Count() = %d, want 50", reg.Count())
	}
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "x", 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRegister should panic on duplicate")
		}
	}()
	MustRegister(reg, "x", 2)
}
