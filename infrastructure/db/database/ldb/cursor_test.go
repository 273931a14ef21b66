package ldb

import (
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/kaspanet/checkpointd/infrastructure/db/database"
)

// heightKey encodes height the way block index keys start: big-endian, so
// that byte order and height order agree.
func heightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}

func populateHeights(t *testing.T, testName string, ldb *LevelDB, bucket *database.Bucket, heights []uint64) {
	for _, height := range heights {
		err := ldb.Put(bucket.Key(heightKey(height)), []byte(fmt.Sprintf("node%d", height)))
		if err != nil {
			t.Fatalf("%s: Put unexpectedly failed: %s", testName, err)
		}
	}
}

func expectClosedCursorPanic(t *testing.T, testName string, operation string, f func()) {
	defer func() {
		panicErr := recover()
		if panicErr == nil {
			t.Fatalf("%s: %s on a closed cursor did not panic", testName, operation)
		}
		if !strings.Contains(fmt.Sprintf("%v", panicErr), "closed cursor") {
			t.Fatalf("%s: %s panicked with an unexpected message: %v", testName, operation, panicErr)
		}
	}()
	f()
}

func TestCursorIteratesInHeightOrder(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorIteratesInHeightOrder")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("block-index"))
	populateHeights(t, "TestCursorIteratesInHeightOrder", ldb, bucket, []uint64{500, 2, 256, 0, 1})

	// Entries of a sibling bucket must not show up in the cursor.
	otherBucket := database.MakeBucket([]byte("block-index-other"))
	populateHeights(t, "TestCursorIteratesInHeightOrder", ldb, otherBucket, []uint64{3})

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorIteratesInHeightOrder: Cursor unexpectedly failed: %s", err)
	}
	defer cursor.Close()

	expectedHeights := []uint64{0, 1, 2, 256, 500}
	i := 0
	for ok := cursor.First(); ok; ok = cursor.Next() {
		if i >= len(expectedHeights) {
			t.Fatalf("TestCursorIteratesInHeightOrder: cursor returned more than %d entries",
				len(expectedHeights))
		}
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("TestCursorIteratesInHeightOrder: Key unexpectedly failed: %s", err)
		}
		height := binary.BigEndian.Uint64(key.Suffix())
		if height != expectedHeights[i] {
			t.Fatalf("TestCursorIteratesInHeightOrder: entry %d has height %d, want %d",
				i, height, expectedHeights[i])
		}
		value, err := cursor.Value()
		if err != nil {
			t.Fatalf("TestCursorIteratesInHeightOrder: Value unexpectedly failed: %s", err)
		}
		if string(value) != fmt.Sprintf("node%d", height) {
			t.Fatalf("TestCursorIteratesInHeightOrder: unexpected value %s at height %d", value, height)
		}
		i++
	}
	if i != len(expectedHeights) {
		t.Fatalf("TestCursorIteratesInHeightOrder: cursor returned %d entries, want %d",
			i, len(expectedHeights))
	}

	// An exhausted cursor has neither key nor value.
	_, err = cursor.Key()
	if !database.IsNotFoundError(err) {
		t.Errorf("TestCursorIteratesInHeightOrder: Key of an exhausted cursor "+
			"returned unexpected error: %v", err)
	}
	_, err = cursor.Value()
	if !database.IsNotFoundError(err) {
		t.Errorf("TestCursorIteratesInHeightOrder: Value of an exhausted cursor "+
			"returned unexpected error: %v", err)
	}
}

func TestCursorSeek(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorSeek")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("block-index"))
	populateHeights(t, "TestCursorSeek", ldb, bucket, []uint64{0, 500, 1000})

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorSeek: Cursor unexpectedly failed: %s", err)
	}
	defer cursor.Close()

	err = cursor.Seek(bucket.Key(heightKey(500)))
	if err != nil {
		t.Fatalf("TestCursorSeek: Seek to an existing key unexpectedly failed: %s", err)
	}
	value, err := cursor.Value()
	if err != nil {
		t.Fatalf("TestCursorSeek: Value unexpectedly failed: %s", err)
	}
	if string(value) != "node500" {
		t.Fatalf("TestCursorSeek: Seek landed on %s, want node500", value)
	}
	if !cursor.Next() {
		t.Fatalf("TestCursorSeek: Next after Seek unexpectedly exhausted the cursor")
	}
	value, err = cursor.Value()
	if err != nil {
		t.Fatalf("TestCursorSeek: Value unexpectedly failed: %s", err)
	}
	if string(value) != "node1000" {
		t.Fatalf("TestCursorSeek: Next after Seek landed on %s, want node1000", value)
	}

	for _, height := range []uint64{1, 2000} {
		err = cursor.Seek(bucket.Key(heightKey(height)))
		if !database.IsNotFoundError(err) {
			t.Errorf("TestCursorSeek: Seek to missing height %d returned "+
				"unexpected error: %v", height, err)
		}
	}
}

func TestCursorCloseErrors(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorCloseErrors")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("block-index"))
	populateHeights(t, "TestCursorCloseErrors", ldb, bucket, []uint64{0})

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorCloseErrors: Cursor unexpectedly failed: %s", err)
	}
	err = cursor.Close()
	if err != nil {
		t.Fatalf("TestCursorCloseErrors: Close unexpectedly failed: %s", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{name: "Seek", call: func() error { return cursor.Seek(bucket.Key(heightKey(0))) }},
		{name: "Key", call: func() error { _, err := cursor.Key(); return err }},
		{name: "Value", call: func() error { _, err := cursor.Value(); return err }},
		{name: "Close", call: cursor.Close},
	}
	for _, test := range tests {
		err := test.call()
		if err == nil || !strings.Contains(err.Error(), "closed cursor") {
			t.Errorf("TestCursorCloseErrors: %s on a closed cursor returned "+
				"unexpected error: %v", test.name, err)
		}
	}

	expectClosedCursorPanic(t, "TestCursorCloseErrors", "First", func() { cursor.First() })
	expectClosedCursorPanic(t, "TestCursorCloseErrors", "Next", func() { cursor.Next() })
}
