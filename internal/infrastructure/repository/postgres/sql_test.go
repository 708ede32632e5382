package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/riskibarqy/rugby-league/internal/domain/result"
	"github.com/riskibarqy/rugby-league/internal/platform/logging"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows should read as not found")
	}
	if isNotFound(sql.ErrConnDone) {
		t.Fatal("unrelated error should not read as not found")
	}
	if isNotFound(nil) {
		t.Fatal("nil error should not read as not found")
	}
}

func TestNullTimeToTime(t *testing.T) {
	at := time.Date(2026, 2, 13, 20, 0, 0, 0, time.UTC)
	if got := nullTimeToTime(sql.NullTime{Time: at, Valid: true}); !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
	if got := nullTimeToTime(sql.NullTime{}); !got.IsZero() {
		t.Fatalf("expected zero time for null, got %v", got)
	}
}

func TestNullableKickoff(t *testing.T) {
	if got := nullableKickoff(time.Time{}); got != nil {
		t.Fatalf("zero kickoff should map to nil, got %v", got)
	}
	at := time.Date(2026, 2, 13, 20, 0, 0, 0, time.UTC)
	if got := nullableKickoff(at); got == nil || !got.Equal(at) {
		t.Fatalf("unexpected kickoff pointer: %v", got)
	}
}

func TestResultRowDecodesScorersOnce(t *testing.T) {
	row := resultTableModel{
		PublicID:    "res-1",
		FixtureID:   "fx-1",
		HomeScore:   26,
		AwayScore:   20,
		HomeScorers: []byte(`[{"player":"Jai Field","type":"try","points":4}]`),
		AwayScorers: []byte(`not-json`),
	}

	item := row.toDomain(context.Background(), logging.NewNop())
	if len(item.HomeScorers) != 1 || item.HomeScorers[0].Type != result.ScoreTry {
		t.Fatalf("unexpected home scorers: %+v", item.HomeScorers)
	}
	if len(item.AwayScorers) != 0 {
		t.Fatalf("malformed away scorers should decode to empty, got %+v", item.AwayScorers)
	}
}

func TestEncodeScorersNilBecomesEmptyArray(t *testing.T) {
	raw, err := encodeScorers(nil)
	if err != nil {
		t.Fatalf("encodeScorers: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", raw)
	}
}
