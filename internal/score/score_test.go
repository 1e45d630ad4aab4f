package score

import (
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestScore_ConcreteSentences(t *testing.T) {
	cases := []struct {
		name     string
		sentence string
		index    int
		total    int
		want     float64
	}{
		// 83 chars, 15 words, has digits: 0.4*1 + 0.3*1 + 0.2*1 + 0.1*0.2
		{"lead with number", "The city council approved a budget of 4.2 million dollars for new parks on Tuesday.", 0, 10, 0.92},
		// 65 chars, 11 words, boilerplate: 0.4*0.5 + 0.3 + 0.2 - 0.5
		{"navigation", "Click here to subscribe to our newsletter for more updates today.", 5, 10, 0.2},
		// 17 chars, 3 words: 0.4*0.9 + 0.3*0.3 + 0.2*0.3
		{"short", "It was a success.", 1, 10, 0.51},
		// markup residue and boilerplate together
		{"artifact and nav", "Read more &nbsp; about the story that everyone is talking about.", 0, 4, 0.4 + 0.3 + 0.2 - 1.0},
		// zero total is treated as one
		{"zero total", "Researchers measured the effect over several long seasons.", 0, 0, 0.4 + 0.3 + 0.2*0.7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.sentence, tc.index, tc.total); !approx(got, tc.want) {
				t.Fatalf("Score = %v, want %v (breakdown %+v)", got, tc.want, Explain(tc.sentence, tc.index, tc.total))
			}
		})
	}
}

func TestLengthBucket_Boundaries(t *testing.T) {
	cases := map[int]float64{
		0: 0.3, 19: 0.3, 20: 0.7, 50: 0.7, 51: 1.0, 150: 1.0, 151: 0.7, 200: 0.7, 201: 0.4,
	}
	for chars, want := range cases {
		if got := LengthBucket(chars); got != want {
			t.Errorf("LengthBucket(%d) = %v, want %v", chars, got, want)
		}
	}
}

func TestWordCountBucket_Boundaries(t *testing.T) {
	cases := map[int]float64{
		0: 0.3, 4: 0.3, 5: 0.7, 10: 0.7, 11: 1.0, 20: 1.0, 21: 0.7, 30: 0.7, 31: 0.4,
	}
	for words, want := range cases {
		if got := WordCountBucket(words); got != want {
			t.Errorf("WordCountBucket(%d) = %v, want %v", words, got, want)
		}
	}
}

func TestPenaltiesApplyOnce(t *testing.T) {
	s := "Click here to sign up, log in, and read more about our cookie and privacy policy."
	b := Explain(s, 0, 1)
	if b.Boilerplate != BoilerplatePenalty {
		t.Fatalf("expected a single boilerplate penalty, got %v", b.Boilerplate)
	}
	s = "<div>{{ title }}</div> renders undefined and NaN values."
	b = Explain(s, 0, 1)
	if b.Artifact != ArtifactPenalty {
		t.Fatalf("expected a single artifact penalty, got %v", b.Artifact)
	}
}

func TestMarkerTables(t *testing.T) {
	for _, p := range BoilerplatePhrases {
		if p != strings.ToLower(p) {
			t.Errorf("boilerplate phrase %q must be lowercase", p)
		}
		if !HasBoilerplate("Prefix " + strings.ToUpper(p) + " suffix") {
			t.Errorf("expected case-insensitive match for %q", p)
		}
	}
	for _, m := range ArtifactMarkers {
		if !HasArtifact("x " + m + " y") {
			t.Errorf("expected artifact match for %q", m)
		}
	}
	if HasArtifact("A normal sentence with a null value.") {
		t.Errorf("bare 'null' without a comma should not count as an artifact")
	}
	if HasBoilerplate("The logistics team logged inventory.") {
		t.Errorf("unexpected boilerplate match")
	}
}

func TestHasDigit(t *testing.T) {
	if !HasDigit("In 2023 sales rose.") {
		t.Fatal("expected digit")
	}
	if HasDigit("No numbers here.") {
		t.Fatal("expected no digit")
	}
}

func BenchmarkScore(b *testing.B) {
	s := "The city council approved a budget of 4.2 million dollars for new parks on Tuesday."
	for i := 0; i < b.N; i++ {
		_ = Score(s, i%50, 50)
	}
}
