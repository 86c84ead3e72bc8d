package category

import (
	"errors"
	"testing"
)

func TestNewSelectionResolvesCanonicalNames(t *testing.T) {
	table := Default()
	sel, err := NewSelection(table, "videos", "IMAGES", "", "Images")
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	if sel.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sel.Len())
	}
	names := sel.Names()
	if names[0] != "Images" || names[1] != "Videos" {
		t.Fatalf("Names = %v, want table order [Images Videos]", names)
	}
	if !sel.Contains("Images") || !sel.Contains("videos") {
		t.Fatal("expected selection to contain Images and Videos")
	}
	if sel.Contains("Audio") {
		t.Fatal("did not expect Audio to be selected")
	}
}

func TestNewSelectionUnknownName(t *testing.T) {
	_, err := NewSelection(Default(), "Images", "Spreadsheets")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestEmptySelection(t *testing.T) {
	var zero Selection
	if !zero.Empty() || zero.Contains("Images") {
		t.Fatal("zero selection should be empty")
	}
	sel, err := NewSelection(Default())
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	if !sel.Empty() {
		t.Fatal("expected empty selection")
	}
	if sel.String() != "(none)" {
		t.Fatalf("String = %q", sel.String())
	}
}

func TestSelectAll(t *testing.T) {
	table := Default()
	sel := SelectAll(table)
	if sel.Len() != table.Len() {
		t.Fatalf("Len = %d, want %d", sel.Len(), table.Len())
	}
	for _, name := range table.Names() {
		if !sel.Contains(name) {
			t.Fatalf("missing %q", name)
		}
	}
}
