package notation

import (
	"errors"
	"testing"
)

func TestCell(t *testing.T) {
	tests := []struct {
		token    string
		row, col int
		valid    bool
	}{
		{"a1", 0, 0, true},
		{"c3", 2, 2, true},
		{"b2", 1, 1, true},
		{"a3", 0, 2, true},
		{"c1", 2, 0, true},
		{"c1 trailing", 2, 0, true},
		{"d4", 0, 0, false},
		{"a0", 0, 0, false},
		{"a4", 0, 0, false},
		{"`1", 0, 0, false},
		{"A1", 0, 0, false},
		{"1a", 0, 0, false},
		{"a", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			row, col, err := Cell(tt.token)
			if !tt.valid {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err=%v, want invalid input", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if row != tt.row || col != tt.col {
				t.Fatalf("got (%d, %d), want (%d, %d)", row, col, tt.row, tt.col)
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for i := range 9 {
		token := Encode(i)
		got, err := Index(token)
		if err != nil {
			t.Fatalf("%s: %v", token, err)
		}
		if got != i {
			t.Errorf("%s: index=%d, want=%d", token, got, i)
		}
	}

	if Encode(9) != "(none)" || Encode(-1) != "(none)" {
		t.Error("out of range index should not be encoded")
	}
}

func TestLayered(t *testing.T) {
	tests := []struct {
		token        string
		layer, index int
		valid        bool
	}{
		{"xa1", 0, 0, true},
		{"yb2", 1, 4, true},
		{"zc3", 2, 8, true},
		{"za3", 2, 2, true},
		{"wa1", 0, 0, false},
		{"{a1", 0, 0, false},
		{"xd1", 0, 0, false},
		{"xa0", 0, 0, false},
		{"x", 0, 0, false},
		{"a1", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			layer, index, err := Layered(tt.token)
			if !tt.valid {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("err=%v, want invalid input", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if layer != tt.layer || index != tt.index {
				t.Fatalf("got (%d, %d), want (%d, %d)", layer, index, tt.layer, tt.index)
			}
			if enc := EncodeLayered(layer, index); enc != tt.token {
				t.Fatalf("encoded=%s, want=%s", enc, tt.token)
			}
		})
	}
}

func TestUltimate(t *testing.T) {
	board, index, err := Ultimate("b2a1")
	if err != nil {
		t.Fatal(err)
	}
	if board != 4 || index != 0 {
		t.Fatalf("got (%d, %d), want (4, 0)", board, index)
	}
	if enc := EncodeUltimate(board, index); enc != "b2a1" {
		t.Fatalf("encoded=%s", enc)
	}

	for _, token := range []string{"b2", "b2a", "d2a1", "b2a4", ""} {
		if _, _, err := Ultimate(token); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%q: err=%v, want invalid input", token, err)
		}
	}
}
