package taskpool

import "testing"

func TestTaskId_zeroIsReserved(t *testing.T) {
	if TaskIdNone != 0 {
		t.Fatalf(`TaskIdNone = %d, want 0`, TaskIdNone)
	}
}

func TestIdCounter_startsAtOneAndIsMonotonic(t *testing.T) {
	c := newIDCounter()
	var prev TaskId
	for i := 0; i < 5; i++ {
		id := c.allocate()
		if id == TaskIdNone {
			t.Fatalf(`allocated reserved zero id`)
		}
		if i == 0 && id != 1 {
			t.Fatalf(`first allocation = %d, want 1`, id)
		}
		if i > 0 && id <= prev {
			t.Fatalf(`ids not monotonic: prev=%d id=%d`, prev, id)
		}
		prev = id
	}
}
