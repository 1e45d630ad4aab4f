package format

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSentence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"adds period", "the market closed higher", "The market closed higher."},
		{"keeps question", "Is this the end?", "Is this the end?"},
		{"keeps exclamation", "What a finish!", "What a finish!"},
		{"collapses whitespace", "Too   many\n\tspaces here.", "Too many spaces here."},
		{"decodes entities", "Tom &amp; Jerry said &quot;hi&quot; &#39;twice&#39;&nbsp;today.", `Tom & Jerry said "hi" 'twice' today.`},
		{"decoded tags stripped", "Use &lt;b&gt;bold&lt;/b&gt; text.", "Use bold text."},
		{"strips tags", "Some <em>emphasised</em> words.", "Some emphasised words."},
		{"strips template markers", "Hello {{ user.name }}, welcome back.", "Hello , welcome back."},
		{"strips citations", "Rates rose sharply[12] last year.", "Rates rose sharply last year."},
		{"upper first letter only when lower", "123 people attended", "123 people attended."},
		{"unicode capitalisation", "élan is French", "Élan is French."},
		{"empty after stripping", "<br/> {{x}} ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sentence(tc.in); got != tc.want {
				t.Fatalf("Sentence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSentence_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := Sentence(long)
	if n := utf8.RuneCountInString(got); n != MaxChars {
		t.Fatalf("expected %d runes, got %d: %q", MaxChars, n, got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if !strings.HasPrefix(got, "Word word") {
		t.Fatalf("expected capitalised prefix, got %q", got)
	}

	exact := "A" + strings.Repeat("b", MaxChars-2) + "."
	if got := Sentence(exact); got != exact {
		t.Fatalf("sentence of exactly %d runes should be unchanged", MaxChars)
	}
}

func TestTokensAndJaccard(t *testing.T) {
	a := Tokens("The quick brown fox, the QUICK dog!")
	want := TokenSet{"quick": {}, "brown": {}}
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("Tokens = %v, want %v", a, want)
	}
	b := Tokens("quick brown bears")
	if got := Jaccard(a, b); got != 2.0/3.0 {
		t.Fatalf("Jaccard = %v, want 2/3", got)
	}
	if got := Jaccard(TokenSet{}, TokenSet{}); got != 0 {
		t.Fatalf("Jaccard of empty sets = %v, want 0", got)
	}
}

func TestDedupe_TrailingClauseNearDuplicate(t *testing.T) {
	first := "The European Central Bank raised interest rates again this week to fight persistent inflation."
	second := "The European Central Bank raised interest rates again this week to fight persistent inflation, analysts said."
	other := "Local farmers reported an unusually early harvest across the northern valleys."
	got := Dedupe([]string{first, other, second}, 10, DefaultSimilarity)
	want := []string{first, other}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %q, want %q", got, want)
	}
	if sim := Jaccard(Tokens(first), Tokens(second)); sim <= DefaultSimilarity {
		t.Fatalf("expected similarity above threshold, got %v", sim)
	}
}

func TestDedupe_TruncatesAndSkipsEmpty(t *testing.T) {
	in := []string{"", "Alpha bravo charlie.", "Delta echo foxtrot.", "Golf hotel india.", "Juliet kilo lima."}
	got := Dedupe(in, 3, 0)
	want := []string{"Alpha bravo charlie.", "Delta echo foxtrot.", "Golf hotel india."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %q, want %q", got, want)
	}
}

func TestDeduper_SentencesWithoutSignificantTokens(t *testing.T) {
	d := NewDeduper(DefaultSimilarity)
	if !d.Accept("It is so.") || !d.Accept("So it is.") {
		t.Fatal("sentences without significant tokens are never near-duplicates")
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 accepted, got %d", d.Len())
	}
}
