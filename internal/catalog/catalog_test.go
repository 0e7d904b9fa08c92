package catalog

import "testing"

func TestValidSubject(t *testing.T) {
	if !ValidSubject("math") {
		t.Error("Expected math to be a valid subject")
	}
	if ValidSubject("astrology") {
		t.Error("Expected astrology to be invalid")
	}
	if ValidSubject("") {
		t.Error("Expected empty subject to be invalid")
	}
}

func TestValidClass(t *testing.T) {
	for _, id := range []string{"9", "10", "11", "12", "ug"} {
		if !ValidClass(id) {
			t.Errorf("Expected class %q to be valid", id)
		}
	}
	if ValidClass("13") {
		t.Error("Expected class 13 to be invalid")
	}
}

func TestValidTopic(t *testing.T) {
	if !ValidTopic("math", "Calculus") {
		t.Error("Expected Calculus to be a valid math topic")
	}
	// Topics are constrained by subject, not global.
	if ValidTopic("physics", "Calculus") {
		t.Error("Expected Calculus to be invalid for physics")
	}
	if ValidTopic("unknown", "Calculus") {
		t.Error("Expected any topic to be invalid for an unknown subject")
	}
}

func TestEverySubjectHasTopics(t *testing.T) {
	for _, s := range Subjects {
		if len(Topics[s.ID]) == 0 {
			t.Errorf("Subject %q has no topics", s.ID)
		}
	}
}

func TestBadgeCatalog(t *testing.T) {
	if len(Badges) != 10 {
		t.Fatalf("Expected 10 badges, got %d", len(Badges))
	}

	thresholds := map[string]int64{
		"first_note":    1,
		"five_notes":    5,
		"ten_notes":     10,
		"twenty_notes":  20,
		"popular":       10,
		"viral":         50,
		"multi_subject": 3,
		"all_rounder":   5,
		"follower_5":    5,
		"follower_20":   20,
	}
	for _, b := range Badges {
		want, ok := thresholds[b.ID]
		if !ok {
			t.Errorf("Unexpected badge %q", b.ID)
			continue
		}
		if b.Requirement.Value != want {
			t.Errorf("Badge %q: expected threshold %d, got %d", b.ID, want, b.Requirement.Value)
		}
		if b.Requirement.Type == "" {
			t.Errorf("Badge %q has no requirement type", b.ID)
		}
	}
}
