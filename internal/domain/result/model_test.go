package result

import (
	"reflect"
	"testing"
)

func TestDecodeScorersPlainArray(t *testing.T) {
	t.Parallel()

	raw := []byte(`[{"player":"J. Field","type":"try","points":4,"minute":12},{"player":"J. Field","type":"conversion","points":2}]`)

	scorers, err := DecodeScorers(raw)
	if err != nil {
		t.Fatalf("DecodeScorers: %v", err)
	}
	if len(scorers) != 2 {
		t.Fatalf("got %d scorers, want 2", len(scorers))
	}
	if scorers[0].Type != ScoreTry || scorers[0].Points != 4 {
		t.Fatalf("unexpected first scorer: %+v", scorers[0])
	}
	if scorers[0].Minute == nil || *scorers[0].Minute != 12 {
		t.Fatalf("expected minute 12, got %+v", scorers[0].Minute)
	}
	if scorers[1].Minute != nil {
		t.Fatalf("expected nil minute on second scorer, got %+v", scorers[1].Minute)
	}
}

func TestDecodeScorersDoubleEncoded(t *testing.T) {
	t.Parallel()

	raw := []byte(`"[{\"player\":\"Penalty Try\",\"type\":\"try\",\"points\":4,\"penaltyTry\":true}]"`)

	scorers, err := DecodeScorers(raw)
	if err != nil {
		t.Fatalf("DecodeScorers: %v", err)
	}
	if len(scorers) != 1 {
		t.Fatalf("got %d scorers, want 1", len(scorers))
	}
	if !scorers[0].PenaltyTry || scorers[0].Player != PenaltyTryPlayer {
		t.Fatalf("unexpected scorer: %+v", scorers[0])
	}
}

func TestDecodeScorersEmptyInputs(t *testing.T) {
	t.Parallel()

	for _, raw := range [][]byte{nil, []byte(""), []byte("null"), []byte(`"null"`), []byte(`""`)} {
		scorers, err := DecodeScorers(raw)
		if err != nil {
			t.Fatalf("DecodeScorers(%q): %v", raw, err)
		}
		if !reflect.DeepEqual(scorers, []Scorer{}) {
			t.Fatalf("DecodeScorers(%q) = %+v, want empty slice", raw, scorers)
		}
	}
}

func TestDecodeScorersMalformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeScorers([]byte(`{"player":"oops"`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if _, err := DecodeScorers([]byte(`"not json at all"`)); err == nil {
		t.Fatal("expected error for double-encoded garbage")
	}
}

func TestTryCount(t *testing.T) {
	t.Parallel()

	scorers := []Scorer{
		{Type: ScoreTry, Points: 4},
		{Type: ScoreConversion, Points: 2},
		{Type: ScoreTry, Points: 4, PenaltyTry: true},
		{Type: ScorePenalty, Points: 2},
		{Type: ScoreDropGoal, Points: 1},
	}

	if got := TryCount(scorers); got != 2 {
		t.Fatalf("TryCount = %d, want 2", got)
	}
	if got := TryCount(nil); got != 0 {
		t.Fatalf("TryCount(nil) = %d, want 0", got)
	}
}
