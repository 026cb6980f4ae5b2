package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/resurs/internal/models"
)

func TestMoods_Order(t *testing.T) {
	want := []models.MoodType{
		models.MoodJoy, models.MoodGratitude, models.MoodEnergy, models.MoodCalm,
		models.MoodTired, models.MoodAnxiety, models.MoodSadness, models.MoodIrritation,
	}
	var got []models.MoodType
	for _, m := range Moods() {
		got = append(got, m.Type)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Moods() order mismatch (-want +got):\n%s", diff)
	}
}

func TestMoodMetadata(t *testing.T) {
	info, ok := MoodMetadata(models.MoodCalm)
	if !ok || info.Label != "Спокойствие" {
		t.Errorf("expected calm metadata, got %+v ok=%v", info, ok)
	}

	legacy, ok := MoodMetadata(models.MoodNeedSupport)
	if !ok {
		t.Fatal("expected legacy mood to resolve")
	}
	tired, _ := MoodMetadata(models.MoodTired)
	if legacy.Label != "Нужна поддержка" || legacy.Color != tired.Color || legacy.Type != models.MoodNeedSupport {
		t.Errorf("unexpected legacy metadata: %+v", legacy)
	}

	grow, ok := MoodMetadata(models.MoodReadyToGrow)
	energy, _ := MoodMetadata(models.MoodEnergy)
	if !ok || grow.Label != "Готовность расти" || grow.Icon != energy.Icon {
		t.Errorf("unexpected legacy metadata: %+v", grow)
	}

	unknown, ok := MoodMetadata(models.MoodType("BORED"))
	if ok {
		t.Error("expected unknown mood to report false")
	}
	if unknown.Label != UnknownMood.Label || unknown.Type != "BORED" {
		t.Errorf("unexpected unknown metadata: %+v", unknown)
	}
}

func TestMoods_ReturnsCopy(t *testing.T) {
	moods := Moods()
	moods[0].Label = "changed"
	if Moods()[0].Label == "changed" {
		t.Error("Moods() must not expose package state")
	}
}

func TestPracticesByCategory(t *testing.T) {
	ids := func(ps []models.Practice) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	tests := []struct {
		category models.PracticeCategory
		want     []string
	}{
		{models.CategoryAll, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}},
		{models.CategoryMeditation, []string{"p5"}},
		{models.CategoryCalm, []string{"p5"}},
		{models.CategoryBreathing, []string{"p7"}},
		{models.CategorySOS, []string{"p8"}},
		{models.PracticeCategory("unknown"), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ids(PracticesByCategory(tt.category))); diff != "" {
				t.Errorf("PracticesByCategory(%s) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestPractice(t *testing.T) {
	p, ok := Practice("p5")
	if !ok || !p.IsLocked {
		t.Errorf("expected locked body scan, got %+v ok=%v", p, ok)
	}
	if _, ok := Practice("p99"); ok {
		t.Error("expected unknown practice to be missing")
	}
	if DisplayCategory(models.CategoryCalm) != models.CategoryMeditation {
		t.Error("calm practices display as meditation")
	}
}

func TestPracticeFilters(t *testing.T) {
	filters := PracticeFilters()
	if len(filters) != 5 || filters[len(filters)-1].Category != models.CategoryAll {
		t.Errorf("unexpected filters: %+v", filters)
	}
	for _, f := range filters {
		if !ValidCategory(f.Category) {
			t.Errorf("filter %s is not a valid category", f.Category)
		}
	}
}

func TestArticleLocked(t *testing.T) {
	tests := []struct {
		article string
		tier    models.SubscriptionLevel
		locked  bool
	}{
		{"a1", models.LevelFree, false},
		{"a3", models.LevelFree, true},
		{"a3", models.LevelBasic, false},
		{"a5", models.LevelBasic, true},
		{"a5", models.LevelExtended, false},
		{"a7", models.LevelExtended, true},
		{"a7", models.LevelPremium, false},
		{"a3", models.SubscriptionLevel("gold"), true},
	}

	for _, tt := range tests {
		a, ok := Article(tt.article)
		if !ok {
			t.Fatalf("article %s missing", tt.article)
		}
		if got := ArticleLocked(a, tt.tier); got != tt.locked {
			t.Errorf("ArticleLocked(%s, %s) = %v, want %v", tt.article, tt.tier, got, tt.locked)
		}
	}

	if n := len(Articles()); n != 7 {
		t.Errorf("expected 7 articles, got %d", n)
	}
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i-1].ID.Rank() >= tiers[i].ID.Rank() {
			t.Errorf("tiers out of order: %s before %s", tiers[i-1].ID, tiers[i].ID)
		}
	}

	tiers[0].Features[0] = "changed"
	if basic, _ := Tier(models.LevelBasic); basic.Features[0] == "changed" {
		t.Error("Tiers() must not expose package state")
	}

	if TierName(models.LevelFree) != "Бесплатный" || TierName("") != "Бесплатный" {
		t.Error("free tier name mismatch")
	}
	if TierName(models.LevelPremium) != "Премиум" {
		t.Errorf("unexpected premium name: %s", TierName(models.LevelPremium))
	}
}
