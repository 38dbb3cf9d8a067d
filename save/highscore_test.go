package save

import "testing"

// TestMemoryOnlyStore exercises the nil-manager degradation path
func TestMemoryOnlyStore(t *testing.T) {
	store, err := NewStore(nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if best := store.Best(); best.HighScore != 0 || best.HighWave != 0 {
		t.Fatalf("Expected zero record, got %+v", best)
	}

	improved, err := store.Submit(500, 7)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !improved {
		t.Error("Expected first submit to improve the record")
	}
	if best := store.Best(); best.HighScore != 500 || best.HighWave != 7 {
		t.Errorf("Expected record 500/7, got %+v", best)
	}
}

// TestSubmitKeepsBest verifies a worse run never lowers the record
func TestSubmitKeepsBest(t *testing.T) {
	store, _ := NewStore(nil)
	store.Submit(500, 7)

	improved, err := store.Submit(300, 4)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if improved {
		t.Error("Worse run reported as improvement")
	}
	if best := store.Best(); best.HighScore != 500 || best.HighWave != 7 {
		t.Errorf("Record regressed to %+v", best)
	}
}

// TestSubmitPartialImprovement verifies each field advances independently
func TestSubmitPartialImprovement(t *testing.T) {
	store, _ := NewStore(nil)
	store.Submit(500, 7)

	// Lower score, deeper wave still counts as a new best
	improved, _ := store.Submit(200, 9)
	if !improved {
		t.Error("Deeper wave not reported as improvement")
	}
	if best := store.Best(); best.HighScore != 500 || best.HighWave != 9 {
		t.Errorf("Expected record 500/9, got %+v", best)
	}
}

// TestRecordRoundTrip verifies the yaml encoding of the record
func TestRecordRoundTrip(t *testing.T) {
	store, _ := NewStore(nil)
	if _, err := store.Submit(1234, 15); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if store.Best() != (Record{HighScore: 1234, HighWave: 15}) {
		t.Errorf("Unexpected record %+v", store.Best())
	}
}
