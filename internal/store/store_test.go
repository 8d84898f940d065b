package store

import (
	"sync"
	"testing"
)

func TestPutGet(t *testing.T) {
	tbl := NewTable()

	if _, ok := tbl.Get(1); ok {
		t.Fatal("empty table should miss")
	}

	tbl.Put(100, 42)
	userID, ok := tbl.Get(100)
	if !ok {
		t.Fatal("expected hit for message 100")
	}
	if userID != 42 {
		t.Errorf("got user %d, want 42", userID)
	}

	if _, ok := tbl.Get(101); ok {
		t.Error("unknown message id should miss")
	}
}

func TestTablesAreDisjoint(t *testing.T) {
	s := New()

	s.Forwarded.Put(5, 111)
	s.ReplyPrompt.Put(6, 222)

	if _, ok := s.ReplyPrompt.Get(5); ok {
		t.Error("forwarded entry leaked into reply-prompt table")
	}
	if _, ok := s.Forwarded.Get(6); ok {
		t.Error("reply-prompt entry leaked into forwarded table")
	}
	if s.Size() != 2 {
		t.Errorf("size = %d, want 2", s.Size())
	}
}

func TestConcurrentAccess(t *testing.T) {
	tbl := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl.Put(i, int64(i*10))
			tbl.Get(i)
		}(i)
	}
	wg.Wait()

	if tbl.Len() != 50 {
		t.Errorf("len = %d, want 50", tbl.Len())
	}
	for i := 0; i < 50; i++ {
		userID, ok := tbl.Get(i)
		if !ok || userID != int64(i*10) {
			t.Errorf("entry %d: got (%d, %v)", i, userID, ok)
		}
	}
}
