package binaryserializer

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestUint64(t *testing.T) {
	tests := []struct {
		value      uint64
		serialized []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{5000, []byte{0x88, 0x13, 0, 0, 0, 0, 0, 0}},
		{^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, test := range tests {
		var w bytes.Buffer
		err := PutUint64(&w, test.value)
		if err != nil {
			t.Fatalf("TestUint64: PutUint64(%d) unexpectedly failed: %s", test.value, err)
		}
		if !bytes.Equal(w.Bytes(), test.serialized) {
			t.Errorf("TestUint64: PutUint64(%d) wrote %x, want %x", test.value, w.Bytes(), test.serialized)
		}

		value, err := Uint64(bytes.NewReader(test.serialized))
		if err != nil {
			t.Fatalf("TestUint64: Uint64(%x) unexpectedly failed: %s", test.serialized, err)
		}
		if value != test.value {
			t.Errorf("TestUint64: Uint64(%x) returned %d, want %d", test.serialized, value, test.value)
		}
	}
}

func TestInt64(t *testing.T) {
	for _, value := range []int64{0, 1526880792, -1} {
		var w bytes.Buffer
		err := PutInt64(&w, value)
		if err != nil {
			t.Fatalf("TestInt64: PutInt64(%d) unexpectedly failed: %s", value, err)
		}
		decoded, err := Int64(&w)
		if err != nil {
			t.Fatalf("TestInt64: Int64 unexpectedly failed: %s", err)
		}
		if decoded != value {
			t.Errorf("TestInt64: got %d, want %d", decoded, value)
		}
	}
}

func TestUint64ShortRead(t *testing.T) {
	_, err := Uint64(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("TestUint64ShortRead: unexpected error: %v", err)
	}
}
