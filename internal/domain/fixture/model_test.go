package fixture

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{raw: "scheduled", want: StatusScheduled},
		{raw: "underway", want: StatusUnderway},
		{raw: "completed", want: StatusCompleted},
		{raw: "cancelled", want: StatusCancelled},
		{raw: "abandoned", want: StatusAbandoned},
		{raw: "postponed", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseStatus(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseStatus(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseStatus(%q) unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStatus(%q) = %v, want %v", tc.raw, got, tc.want)
		}
		if got.String() != tc.raw {
			t.Fatalf("Status(%v).String() = %q, want %q", got, got.String(), tc.raw)
		}
	}
}

func TestStatusCountsForStandings(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusScheduled, StatusUnderway, StatusCancelled, StatusAbandoned} {
		if s.CountsForStandings() {
			t.Fatalf("status %v should not count for standings", s)
		}
	}
	if !StatusCompleted.CountsForStandings() {
		t.Fatal("completed status should count for standings")
	}
}

func TestFixtureValidate(t *testing.T) {
	t.Parallel()

	valid := Fixture{ID: "fx-1", LeagueID: "lg-1", HomeTeamID: "tm-1", AwayTeamID: "tm-2"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid fixture rejected: %v", err)
	}

	sameTeams := valid
	sameTeams.AwayTeamID = sameTeams.HomeTeamID
	if err := sameTeams.Validate(); err == nil {
		t.Fatal("fixture with identical teams accepted")
	}

	noLeague := valid
	noLeague.LeagueID = ""
	if err := noLeague.Validate(); err == nil {
		t.Fatal("fixture without league accepted")
	}
}
