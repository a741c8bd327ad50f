package keyfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var bothFields = []Field{FieldString, FieldKey}

func TestLine(t *testing.T) {
	if got := string(Line(FieldString, "xsbGxsY=")); got != "string : xsbGxsY=\n" {
		t.Errorf("Line(FieldString) = %q", got)
	}
	if got := string(Line(FieldKey, "edcba")); got != "key : edcba\n" {
		t.Errorf("Line(FieldKey) = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		bufs []string
		want map[Field]string
	}{
		{
			name: "indented markers",
			bufs: []string{"  string : C1\n\tkey : K1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "single buffer",
			bufs: []string{"string : C1\nkey : K1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "reversed order",
			bufs: []string{"key : K1\nstring : C1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "two buffers",
			bufs: []string{"string : C1\n", "key : K1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "two buffers swapped",
			bufs: []string{"key : K1\n", "string : C1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "no trailing newline between buffers",
			bufs: []string{"key : K1", "string : C1"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "crlf line endings",
			bufs: []string{"string : C1\r\nkey : K1\r\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "first occurrence wins",
			bufs: []string{"string : C1\nkey : K1\nstring : C2\nkey : K2\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "surrounding noise",
			bufs: []string{"# saved by strcrypto\n\nstring : C1\nnotes\nkey : K1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "K1"},
		},
		{
			name: "value containing separator",
			bufs: []string{"string : C1\nkey : a : b\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "a : b"},
		},
		{
			name: "key mentioning the other marker",
			bufs: []string{"key : string : x\nstring : C1\n"},
			want: map[Field]string{FieldString: "C1", FieldKey: "string : x"},
		},
		{
			name: "empty value",
			bufs: []string{"string : \nkey : K1\n"},
			want: map[Field]string{FieldString: "", FieldKey: "K1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bufs := make([][]byte, len(tt.bufs))
			for i, b := range tt.bufs {
				bufs[i] = []byte(b)
			}

			got, err := Parse(bothFields, bufs...)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_MissingField(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		missing Field
	}{
		{"no string line", "key : K1\n", FieldString},
		{"no key line", "string : C1\n", FieldKey},
		{"empty", "", FieldString},
		{"marker without separator space", "string: C1\nkey : K1\n", FieldString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(bothFields, []byte(tt.buf))
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("Parse() error = %v, want ErrMissingField", err)
			}

			var fieldErr *MissingFieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error should be *MissingFieldError, got %T", err)
			}
			if fieldErr.Field != tt.missing {
				t.Errorf("MissingFieldError.Field = %q, want %q", fieldErr.Field, tt.missing)
			}
		})
	}
}

func TestParse_LongLine(t *testing.T) {
	long := make([]byte, 200000)
	for i := range long {
		long[i] = 'A'
	}
	buf := append([]byte("string : "), long...)
	buf = append(buf, "\nkey : K1\n"...)

	got, err := Parse(bothFields, buf)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got[FieldString]) != len(long) {
		t.Errorf("len(string value) = %d, want %d", len(got[FieldString]), len(long))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "edcba", false},
		{"empty", "", false},
		{"separator inside", "a : b", false},
		{"newline", "k1\nk2", true},
		{"carriage return", "k1\rk2", true},
		{"trailing newline", "k1\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(FieldKey, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrLineBreak) {
				t.Errorf("error = %v, want ErrLineBreak", err)
			}
			var breakErr *LineBreakError
			if !errors.As(err, &breakErr) || breakErr.Field != FieldKey {
				t.Errorf("error = %#v, want *LineBreakError for key", err)
			}
		})
	}
}
