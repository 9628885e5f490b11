// ABOUTME: Tests for DC court constants, judge roster resolution, and NOS checks
// ABOUTME: Verifies initials and name-fragment lookup against the roster
package courtlistener

import "testing"

func TestLookupJudge(t *testing.T) {
	tests := []struct {
		query    string
		wantName string
	}{
		{"JEB", "James E. Boasberg"},
		{"jeb", "James E. Boasberg"},
		{"Boasberg", "James E. Boasberg"},
		{"kollar-kotelly", "Colleen Kollar-Kotelly"},
		{" ABJ ", "Amy Berman Jackson"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			judge, ok := LookupJudge(tt.query)
			if !ok {
				t.Fatalf("LookupJudge(%q) not found", tt.query)
			}
			if judge.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", judge.Name, tt.wantName)
			}
		})
	}

	if _, ok := LookupJudge("Learned Hand"); ok {
		t.Error("LookupJudge should miss for a judge not on the roster")
	}
}

func TestLookupJudge_InitialsWinOverFragments(t *testing.T) {
	// "RC" is Contreras's initials and also a substring of several names.
	judge, ok := LookupJudge("RC")
	if !ok {
		t.Fatal("LookupJudge(RC) not found")
	}
	if judge.Name != "Rudolph Contreras" {
		t.Errorf("Name = %q, want initials match to win", judge.Name)
	}
}

func TestIsImmigrationNOS(t *testing.T) {
	for _, nos := range []string{
		"462 Naturalization Application",
		"463 Habeas Corpus - Alien Detainee",
		"465 Other Immigration Actions",
	} {
		if !IsImmigrationNOS(nos) {
			t.Errorf("IsImmigrationNOS(%q) = false, want true", nos)
		}
	}

	for _, nos := range []string{"", "895 Freedom of Information Act", "890 Other Statutory Actions"} {
		if IsImmigrationNOS(nos) {
			t.Errorf("IsImmigrationNOS(%q) = true, want false", nos)
		}
	}
}
