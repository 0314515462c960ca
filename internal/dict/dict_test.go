package dict

import (
	"errors"
	"testing"
)

func mustDict(t *testing.T, entries []Entry) *Dict {
	t.Helper()
	d, err := New(entries)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

func TestNewEmptyKey(t *testing.T) {
	_, err := New([]Entry{{Key: "", Values: []string{"x"}}})
	if !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestNewNoValues(t *testing.T) {
	_, err := New([]Entry{{Key: "a", Values: nil}})
	if !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("expected ErrMalformedEntry, got %v", err)
	}
}

func TestMatchLongestWins(t *testing.T) {
	d := mustDict(t, []Entry{
		{Key: "AB", Values: []string{"X"}},
		{Key: "ABC", Values: []string{"Y"}},
	})

	n, values, ok := d.Match("ABCD")
	if !ok {
		t.Fatal("expected a match")
	}
	if n != 3 {
		t.Errorf("expected match length 3, got %d", n)
	}
	if values[0] != "Y" {
		t.Errorf("expected value Y, got %q", values[0])
	}
}

func TestMatchPrefixOnly(t *testing.T) {
	d := mustDict(t, []Entry{{Key: "BC", Values: []string{"X"}}})

	// The key occurs in the text but not at the head.
	if _, _, ok := d.Match("ABC"); ok {
		t.Error("expected no match for non-prefix key")
	}
}

func TestMatchNoMatch(t *testing.T) {
	d := mustDict(t, []Entry{{Key: "abc", Values: []string{"x"}}})

	if n, values, ok := d.Match("xyz"); ok || n != 0 || values != nil {
		t.Errorf("expected miss, got n=%d values=%v ok=%v", n, values, ok)
	}
	if _, _, ok := d.Match(""); ok {
		t.Error("expected miss on empty text")
	}
}

func TestMatchMultiByteKeys(t *testing.T) {
	d := mustDict(t, []Entry{
		{Key: "发", Values: []string{"發", "髮"}},
		{Key: "发展", Values: []string{"發展"}},
	})

	n, values, ok := d.Match("发展中")
	if !ok {
		t.Fatal("expected a match")
	}
	if n != len("发展") {
		t.Errorf("expected match length %d, got %d", len("发展"), n)
	}
	if values[0] != "發展" {
		t.Errorf("expected 發展, got %q", values[0])
	}

	n, values, ok = d.Match("发财")
	if !ok {
		t.Fatal("expected a match")
	}
	if n != len("发") || values[0] != "發" {
		t.Errorf("expected single-character match 發, got n=%d values=%v", n, values)
	}
	if len(values) != 2 || values[1] != "髮" {
		t.Errorf("expected both candidates retained, got %v", values)
	}
}

func TestDuplicateKeyLastWins(t *testing.T) {
	d := mustDict(t, []Entry{
		{Key: "a", Values: []string{"first"}},
		{Key: "a", Values: []string{"second"}},
	})

	if d.Len() != 1 {
		t.Errorf("expected 1 key, got %d", d.Len())
	}
	_, values, ok := d.Match("a")
	if !ok || values[0] != "second" {
		t.Errorf("expected later entry to win, got %v ok=%v", values, ok)
	}
}

func TestMaxKeyLenCountsRunes(t *testing.T) {
	d := mustDict(t, []Entry{
		{Key: "发展中国家", Values: []string{"發展中國家"}},
		{Key: "a", Values: []string{"b"}},
	})

	if d.MaxKeyLen() != 5 {
		t.Errorf("expected max key length 5 runes, got %d", d.MaxKeyLen())
	}
}

func TestEmptyDict(t *testing.T) {
	d := mustDict(t, nil)

	if d.MaxKeyLen() != 0 {
		t.Errorf("expected max key length 0, got %d", d.MaxKeyLen())
	}
	if d.Len() != 0 {
		t.Errorf("expected 0 keys, got %d", d.Len())
	}
	if _, _, ok := d.Match("anything"); ok {
		t.Error("expected no match from empty dictionary")
	}
}

func TestEmptyValueDeletes(t *testing.T) {
	d := mustDict(t, []Entry{{Key: "omit", Values: []string{""}}})

	n, values, ok := d.Match("omitted")
	if !ok || n != 4 {
		t.Fatalf("expected 4-byte match, got n=%d ok=%v", n, ok)
	}
	if values[0] != "" {
		t.Errorf("expected empty replacement, got %q", values[0])
	}
}
