package filter

import "testing"

func TestTableIDsMatchPosition(t *testing.T) {
	for i, e := range Table {
		if int(e.ID) != i {
			t.Fatalf("Table[%d] has ID %d, want %d", i, e.ID, i)
		}
	}
}

func TestByIDRoundTrip(t *testing.T) {
	e, ok := ByID(Invert)
	if !ok {
		t.Fatal("ByID(Invert) should be found")
	}
	if e.LongFlag != "invert" {
		t.Fatalf("ByID(Invert).LongFlag = %q, want \"invert\"", e.LongFlag)
	}
}

func TestByIDOutOfRange(t *testing.T) {
	if _, ok := ByID(ID(-1)); ok {
		t.Fatal("ByID(-1) should not be found")
	}
	if _, ok := ByID(ID(len(Table))); ok {
		t.Fatal("ByID(len(Table)) should not be found")
	}
}

func TestByFlagMatchesShortAndLong(t *testing.T) {
	short, ok := ByFlag("bw")
	if !ok || short.ID != BlackAndWhite {
		t.Fatalf("ByFlag(\"bw\") = %+v, %v, want BlackAndWhite", short, ok)
	}
	long, ok := ByFlag("blackAndWhite")
	if !ok || long.ID != BlackAndWhite {
		t.Fatalf("ByFlag(\"blackAndWhite\") = %+v, %v, want BlackAndWhite", long, ok)
	}
}

func TestByFlagUnknown(t *testing.T) {
	if _, ok := ByFlag("does-not-exist"); ok {
		t.Fatal("ByFlag of an unknown flag should not be found")
	}
}

func TestTableHasNoDuplicateFlags(t *testing.T) {
	seenShort := make(map[string]bool)
	seenLong := make(map[string]bool)
	for _, e := range Table {
		if seenShort[e.ShortFlag] {
			t.Fatalf("duplicate short flag %q", e.ShortFlag)
		}
		seenShort[e.ShortFlag] = true
		if seenLong[e.LongFlag] {
			t.Fatalf("duplicate long flag %q", e.LongFlag)
		}
		seenLong[e.LongFlag] = true
	}
}
