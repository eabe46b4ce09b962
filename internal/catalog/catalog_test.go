package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestAllReturnsSevenSubjects(t *testing.T) {
	all := All()

	if len(all) != 7 {
		t.Fatalf("expected 7 subjects, got %d", len(all))
	}

	for _, s := range all {
		if s.ID == "" {
			t.Error("subject with empty id")
		}
		if s.Name == "" {
			t.Errorf("subject %s has empty name", s.ID)
		}
		if s.Description == "" {
			t.Errorf("subject %s has empty description", s.ID)
		}
	}
}

func TestIDsOrder(t *testing.T) {
	want := []string{
		"warCasualties",
		"medicalServices",
		"beaches",
		"HMO_insured_main",
		"childKi",
		"childCheckup",
		"serviceQuality",
	}

	got := IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("expected ids[%d] = %s, got %s", i, id, got[i])
		}
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("beaches")
	if !ok {
		t.Fatal("beaches should be a known subject")
	}
	if s.Name != "Beaches" {
		t.Errorf("expected name 'Beaches', got %q", s.Name)
	}

	if _, ok := Lookup("not_a_subject"); ok {
		t.Error("unknown subject should not resolve")
	}
}

func TestValidateKnownSubject(t *testing.T) {
	if err := Validate("childCheckup"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateUnknownSubjectListsAllIDs(t *testing.T) {
	err := Validate("not_a_subject")
	if err == nil {
		t.Fatal("expected error for unknown subject")
	}

	var invalid *InvalidSubjectError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidSubjectError, got %T", err)
	}

	msg := err.Error()
	for _, id := range IDs() {
		if !strings.Contains(msg, id) {
			t.Errorf("error message missing valid id %s: %s", id, msg)
		}
	}
}
