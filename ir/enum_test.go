package ir

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEnumType_DropsDuplicates(t *testing.T) {
	e := NewEnumType("MessageKind", TypeString, []any{"b", "a", "b", "c.d"})

	want := []string{"B", "A", "C_D"}
	if len(e.Values) != len(want) {
		t.Fatalf("got %d values, want %d", len(e.Values), len(want))
	}
	for i, v := range e.Values {
		if v.Constant != want[i] {
			t.Errorf("Values[%d].Constant = %q, want %q", i, v.Constant, want[i])
		}
	}

	first, ok := e.First()
	if !ok || first.Literal != "b" {
		t.Errorf("First() = %v, %v; want b, true", first.Literal, ok)
	}
}

func TestEnumSet_RegisterIsIdempotent(t *testing.T) {
	s := NewEnumSet()

	added, err := s.Register(NewEnumType("MessageKind", TypeString, []any{"request", "response"}))
	if err != nil || !added {
		t.Fatalf("first Register() = %v, %v; want true, nil", added, err)
	}

	added, err = s.Register(NewEnumType("MessageKind", TypeString, []any{"event"}))
	if err != nil || added {
		t.Fatalf("second Register() = %v, %v; want false, nil", added, err)
	}

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	e, _ := s.Lookup("MessageKind")
	if len(e.Values) != 2 || e.Values[0].Literal != "request" || e.Values[1].Literal != "response" {
		t.Errorf("surviving values = %+v, want first registration", e.Values)
	}
}

func TestEnumSet_Sorted(t *testing.T) {
	s := NewEnumSet()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		if _, err := s.Register(NewEnumType(name, TypeString, []any{"x"})); err != nil {
			t.Fatal(err)
		}
	}

	got := s.Sorted()
	want := []string{"Alpha", "Mid", "Zeta"}
	for i, e := range got {
		if e.Name != want[i] {
			t.Errorf("Sorted()[%d] = %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestEnumSet_Frozen(t *testing.T) {
	s := NewEnumSet()
	s.Freeze()

	_, err := s.Register(NewEnumType("X", TypeString, []any{"x"}))
	if !errors.Is(err, ErrFrozen) {
		t.Errorf("Register() after Freeze error = %v, want ErrFrozen", err)
	}
}

func TestEnumType_CheckConstants(t *testing.T) {
	tests := []struct {
		name     string
		literals []any
		wantErr  bool
	}{
		{"distinct", []any{"a.b", "c"}, false},
		{"dot and slash collide", []any{"a.b", "a/b"}, true},
		{"case collides", []any{"On", "on"}, true},
		{"exact duplicates are dropped", []any{"x", "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEnumType("MsgKind", TypeString, tt.literals).CheckConstants(nil)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CheckConstants() error = %v", err)
				}
				return
			}
			var collision *ConstantCollisionError
			if !errors.As(err, &collision) {
				t.Fatalf("CheckConstants() error = %v, want *ConstantCollisionError", err)
			}
			if collision.Enum != "MsgKind" || collision.First != tt.literals[0] || collision.Second != tt.literals[1] {
				t.Errorf("collision = %+v", collision)
			}
		})
	}
}

func TestEnumType_CheckConstantsWithNameFunc(t *testing.T) {
	e := NewEnumType("Code", TypeString, []any{"a-b", "a_b"})
	if err := e.CheckConstants(nil); err != nil {
		t.Fatalf("CheckConstants(nil) error = %v", err)
	}
	underscore := func(v EnumValue) string { return strings.ReplaceAll(v.Constant, "-", "_") }
	if err := e.CheckConstants(underscore); err == nil {
		t.Error("CheckConstants(underscore) = nil, want collision")
	}
}
