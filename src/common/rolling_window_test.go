package common

import (
	"testing"
)

func TestRollingWindow(t *testing.T) {
	size := 10
	testSize := 3 * size
	window := NewRollingWindow("test", size)
	items := []int64{}
	for i := 0; i < testSize; i++ {
		item := int64(100 + i)
		window.Set(item, i)
		items = append(items, item)
	}
	cached, lastIndex := window.GetLastWindow()

	expectedLastIndex := testSize - 1
	if lastIndex != expectedLastIndex {
		t.Fatalf("lastIndex should be %d, not %d", expectedLastIndex, lastIndex)
	}

	start := (testSize / (2 * size)) * (size)
	count := testSize - start

	for i := 0; i < count; i++ {
		if cached[i] != items[start+i] {
			t.Fatalf("cached[%d] should be %d, not %d", i, items[start+i], cached[i])
		}
	}

	err := window.Set(0, expectedLastIndex+2)
	if err == nil || !IsStore(err, SkippedIndex) {
		t.Fatalf("Should return SkippedIndex")
	}

	_, err = window.GetItem(9)
	if err == nil || !IsStore(err, TooLate) {
		t.Fatalf("Should return TooLate")
	}

	indexes := []int{10, 17, 29}
	for _, i := range indexes {
		item, err := window.GetItem(i)
		if err != nil {
			t.Fatalf("GetItem(%d) err: %v", i, err)
		}
		if item != items[i] {
			t.Fatalf("GetItem(%d) should be %d, not %d", i, items[i], item)
		}
	}

	_, err = window.GetItem(lastIndex + 1)
	if err == nil || !IsStore(err, KeyNotFound) {
		t.Fatalf("Should return KeyNotFound")
	}

	//Test updating an item in place
	updateIndex := 26
	updateValue := int64(-42)

	if err := window.Set(updateValue, updateIndex); err != nil {
		t.Fatalf("Set(%d) err: %v", updateIndex, err)
	}
	item, err := window.GetItem(updateIndex)
	if err != nil {
		t.Fatalf("GetItem(%d) err: %v", updateIndex, err)
	}
	if item != updateValue {
		t.Fatalf("Updated item %d should be %d, not %d", updateIndex, updateValue, item)
	}
}

func TestRollingWindowSkip(t *testing.T) {
	size := 10
	testSize := 25
	window := NewRollingWindow("test", size)

	items := []int64{}
	for i := 0; i < testSize; i++ {
		item := int64(2 * i)
		window.Append(item)
		items = append(items, item)
	}

	// items 0..9 were evicted when the window rolled at index 20
	if _, err := window.Get(0); err == nil || !IsStore(err, TooLate) {
		t.Fatalf("Should return TooLate")
	}

	// skipping past the last index returns an empty slice
	res, err := window.Get(testSize + 5)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("Expected empty result, got %v", res)
	}

	skip := 15
	res, err = window.Get(skip)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	expected := items[skip+1:]
	if len(res) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(res))
	}
	for i := range expected {
		if res[i] != expected[i] {
			t.Fatalf("res[%d] should be %d, not %d", i, expected[i], res[i])
		}
	}
}
