package confidence

import (
	"testing"

	"github.com/hamed0406/footprint/internal/domain"
)

func outcome(platform string, c domain.Category, found bool) domain.ProbeOutcome {
	return domain.ProbeOutcome{Platform: platform, URL: "https://" + platform, Category: c, Found: found}
}

func TestGroup_Precedence(t *testing.T) {
	in := []domain.ProbeOutcome{
		outcome("linkedin", domain.CategoryProfessional, false),
		outcome("twitter", domain.CategorySocial, true),
		outcome("github", domain.CategoryProfessional, true),
		outcome("reddit", domain.CategorySocial, false),
		outcome("tiktok", domain.CategorySocial, true),
	}
	g := Group(in)

	if len(g.High) != 2 || g.High[0].Platform != "linkedin" || g.High[1].Platform != "github" {
		t.Fatalf("high tier wrong or unordered: %+v", g.High)
	}
	if len(g.Medium) != 2 || g.Medium[0].Platform != "twitter" || g.Medium[1].Platform != "tiktok" {
		t.Fatalf("medium tier wrong or unordered: %+v", g.Medium)
	}
	if len(g.Low) != 1 || g.Low[0].Platform != "reddit" {
		t.Fatalf("low tier wrong: %+v", g.Low)
	}
	if g.Len() != len(in) {
		t.Fatalf("partition lost outcomes: %d != %d", g.Len(), len(in))
	}
	if g.Note == "" {
		t.Fatalf("note missing")
	}
}

func TestGroup_EveryOutcomeExactlyOnce(t *testing.T) {
	cats := []domain.Category{domain.CategorySocial, domain.CategoryProfessional}
	var in []domain.ProbeOutcome
	for i := 0; i < 40; i++ {
		in = append(in, outcome(string(rune('a'+i%26))+string(rune('a'+i/26)), cats[i%2], i%3 == 0))
	}
	g := Group(in)

	count := map[string]int{}
	for _, tier := range [][]domain.ProbeOutcome{g.High, g.Medium, g.Low} {
		for _, o := range tier {
			count[o.Platform]++
		}
	}
	for _, o := range in {
		if count[o.Platform] != 1 {
			t.Fatalf("%s appears %d times", o.Platform, count[o.Platform])
		}
	}
	for _, o := range g.High {
		if o.Category != domain.CategoryProfessional {
			t.Fatalf("non-professional in high: %+v", o)
		}
	}
}

func TestGroup_EmptyTiersAreNotNil(t *testing.T) {
	g := Group(nil)
	if g.High == nil || g.Medium == nil || g.Low == nil {
		t.Fatalf("tiers must be empty slices, got %+v", g)
	}
}

func TestTotalFound(t *testing.T) {
	in := []domain.ProbeOutcome{
		outcome("a", domain.CategorySocial, true),
		outcome("b", domain.CategorySocial, false),
		outcome("c", domain.CategoryProfessional, true),
	}
	if n := TotalFound(in); n != 2 {
		t.Fatalf("want 2, got %d", n)
	}
}
