package leaderboard

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/storage"
)

type brokenKV struct {
	getErr error
	putErr error
	data   []byte
}

func (b *brokenKV) Get(string) ([]byte, bool, error) {
	if b.getErr != nil {
		return nil, false, b.getErr
	}
	return b.data, b.data != nil, nil
}

func (b *brokenKV) Put(_ string, value []byte) error {
	if b.putErr != nil {
		return b.putErr
	}
	b.data = value
	return nil
}

func TestRecordSortsDescending(t *testing.T) {
	board := New(NewMemoryKV(), nil)

	for _, e := range []Entry{{"ada", 120}, {"bob", 350}, {"cy", 40}} {
		if _, err := board.Record(e.Name, e.Score); err != nil {
			t.Fatalf("Record(%v) failed: %v", e, err)
		}
	}

	got := board.Load()
	want := []Entry{{"bob", 350}, {"ada", 120}, {"cy", 40}}
	if len(got) != len(want) {
		t.Fatalf("Load() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestRecordGrowsByOne(t *testing.T) {
	board := New(NewMemoryKV(), nil)

	for i := range 25 {
		before := len(board.Load())
		entries, err := board.Record(fmt.Sprintf("p%d", i), (i*37)%200)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != before+1 {
			t.Fatalf("record %d: %d entries, expected %d", i, len(entries), before+1)
		}
		for j := 1; j < len(entries); j++ {
			if entries[j-1].Score < entries[j].Score {
				t.Fatalf("record %d: board not sorted: %v", i, entries)
			}
		}
	}
}

func TestRecordTiesKeepInsertionOrder(t *testing.T) {
	board := New(NewMemoryKV(), nil)
	board.Record("first", 100)  //nolint:errcheck
	board.Record("second", 100) //nolint:errcheck
	board.Record("third", 100)  //nolint:errcheck

	got := board.Load()
	for i, name := range []string{"first", "second", "third"} {
		if got[i].Name != name {
			t.Errorf("position %d = %s, expected %s", i, got[i].Name, name)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "Anonymous"},
		{"   ", "Anonymous"},
		{"  ada ", "ada"},
		{"Grace Hopper", "Grace Hopper"},
	}
	for _, tc := range tests {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		kv   *brokenKV
	}{
		{"missing", &brokenKV{}},
		{"read error", &brokenKV{getErr: errors.New("disk on fire")}},
		{"corrupt", &brokenKV{data: []byte("{not json")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := New(tc.kv, nil)
			if entries := board.Load(); len(entries) != 0 {
				t.Errorf("Load() = %v, expected empty", entries)
			}
		})
	}
}

func TestRecordOverCorruptDataStartsFresh(t *testing.T) {
	kv := &brokenKV{data: []byte("garbage")}
	board := New(kv, nil)

	entries, err := board.Record("ada", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Record() = %v, expected a single entry", entries)
	}
	if string(kv.data) != `[{"name":"ada","score":10}]` {
		t.Errorf("stored %s", kv.data)
	}
}

func TestRecordReportsPersistFailure(t *testing.T) {
	board := New(&brokenKV{putErr: errors.New("read-only")}, nil)

	entries, err := board.Record("ada", 10)
	if err == nil {
		t.Fatal("Record() should report the failed write")
	}
	if len(entries) != 1 {
		t.Errorf("Record() should still return the updated board, got %v", entries)
	}
}

func TestRankTopBest(t *testing.T) {
	board := New(NewMemoryKV(), nil)
	if board.Best() != 0 || board.Rank(10) != 1 {
		t.Error("empty board should have best 0 and rank 1")
	}

	for _, s := range []int{300, 200, 100} {
		board.Record("x", s) //nolint:errcheck
	}

	if board.Best() != 300 {
		t.Errorf("Best() = %d, expected 300", board.Best())
	}
	if r := board.Rank(250); r != 2 {
		t.Errorf("Rank(250) = %d, expected 2", r)
	}
	if r := board.Rank(200); r != 3 {
		t.Errorf("Rank(200) = %d, expected 3", r)
	}
	if top := board.Top(2); len(top) != 2 || top[1].Score != 200 {
		t.Errorf("Top(2) = %v", top)
	}
	if all := board.Top(0); len(all) != 3 {
		t.Errorf("Top(0) = %v, expected everything", all)
	}
}

func TestBoardOverSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := New(store, nil)
	board.Record("ada", 120) //nolint:errcheck
	board.Record("", 350)    //nolint:errcheck

	// A second board over the same store sees the persisted list
	got := New(store, nil).Load()
	if len(got) != 2 || got[0] != (Entry{"Anonymous", 350}) || got[1] != (Entry{"ada", 120}) {
		t.Errorf("Load() = %v", got)
	}
}

func TestConcurrentRecords(t *testing.T) {
	board := New(NewMemoryKV(), nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			board.Record(fmt.Sprintf("s%d", i), i) //nolint:errcheck
		}()
	}
	wg.Wait()

	if n := len(board.Load()); n != 20 {
		t.Errorf("%d entries after 20 concurrent records", n)
	}
}
