package grounding

import (
	"reflect"
	"strings"
	"testing"
)

func TestUngroundedNumbers(t *testing.T) {
	t.Parallel()

	facts := []Fact{
		{Label: "Arsenal vs Chelsea score", Value: "2-0", Source: SourceRoundFacts},
		{Label: "Arsenal xG", Value: "1.90", Source: SourceRoundFacts},
		{Label: "Chelsea xGOT", Value: "0.30", Source: SourceRoundFacts},
		{Label: "Arsenal vs Chelsea attendance", Value: "60,214", Source: SourceRoundFacts},
		{Label: "Arsenal box share", Value: "0.73", Source: SourceShotProfile},
		{Label: "Raya xGOT delta", Value: "-0.40", Source: SourceGoalkeeperXGOT},
	}

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "all grounded",
			body: "Arsenal won 2-0 with 1.90 xG in front of 60,214 fans; box share hit 0.73.",
			want: []string{},
		},
		{
			name: "rounding and trailing zero variants",
			body: "Arsenal created 1.9 xG while Chelsea managed 0.3 on target.",
			want: []string{},
		},
		{
			name: "allow-listed minutes and years",
			body: "After 90 minutes of the 2024 campaign the pressure told at 45.",
			want: []string{},
		},
		{
			name: "ungrounded figures unique in order",
			body: "Arsenal won 3-0, the 3 goals from 2.75 xG; 2.75 was a season high and 17 shots.",
			want: []string{"2.75", "17"},
		},
		{
			name: "negative delta grounded",
			body: "Raya sat at -0.4 goals prevented.",
			want: []string{},
		},
		{
			name: "numbers glued to letters ignored",
			body: "The U21 side and Arsenal's 4th kit were unveiled.",
			want: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := UngroundedNumbers(tc.body, facts)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unexpected ungrounded numbers: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestUngroundedNumbers_PercentMatchesPlainFact(t *testing.T) {
	t.Parallel()

	facts := []Fact{{Label: "Possession", Value: "58", Source: SourceRoundFacts}}
	got := UngroundedNumbers("Arsenal held 58% of the ball.", facts)
	if len(got) != 0 {
		t.Fatalf("expected percent token to be grounded, got %v", got)
	}
}

func TestAppendOmissionNote(t *testing.T) {
	t.Parallel()

	if got := AppendOmissionNote("body", nil); got != "body" {
		t.Fatalf("expected body unchanged, got %q", got)
	}

	got := AppendOmissionNote("body", []string{"17"})
	if !strings.HasSuffix(got, OmissionNote) || !strings.HasPrefix(got, "body\n\n") {
		t.Fatalf("unexpected annotated body: %q", got)
	}
}

func TestNumberVariants(t *testing.T) {
	t.Parallel()

	got := numberVariants("1.50")
	want := []string{"1.50", "2", "1.5", "1.50", "1.5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected variants: got=%v want=%v", got, want)
	}

	if got := numberVariants("abc"); !reflect.DeepEqual(got, []string{"abc"}) {
		t.Fatalf("unexpected variants for non-number: %v", got)
	}
}
