package analyzer

import (
	"testing"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Default()
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if a.Length != 0 || len(a.Matches) != 0 {
		t.Errorf("Analyze(\"\") = %+v, want empty analysis", a)
	}
}

func TestAnalyzeStripsNullBytes(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "pass\x00word")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if a.Password != "password" {
		t.Errorf("Password = %q, want %q", a.Password, "password")
	}
}

func TestAnalyzeDictionaryMatch(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "password")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindDictionary && m.Dictionary.Word == "password" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a dictionary match for \"password\", got %+v", a.Matches)
	}
}

func TestAnalyzeSequence(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "zzzabcdzzz")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindSequence && m.Token == "abcd" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a sequence match for \"abcd\", got %+v", a.Matches)
	}
}

func TestAnalyzeRepeat(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "xyzaaaaaaxyz")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindRepeat && m.Repeat.BaseToken == "a" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a repeat match with base \"a\", got %+v", a.Matches)
	}
}

func TestAnalyzeDate(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "xx01/15/1990xx")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindDate && m.Date.Year == 1990 && m.Date.Month == 1 && m.Date.Day == 15 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a date match for 1990-01-15, got %+v", a.Matches)
	}
}

func TestAnalyzeKeyboardWalk(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "xxqwertyxx")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindKeyboard && m.Keyboard.Graph == "qwerty" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a qwerty keyboard-walk match, got %+v", a.Matches)
	}
}

func TestAnalyzeLeet(t *testing.T) {
	s := testStore(t)
	a, err := Analyze(s, "p4ssword")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	found := false
	for _, m := range a.Matches {
		if m.Kind == match.KindLeet && m.Leet.Word == "password" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a l33t match de-substituting to \"password\", got %+v", a.Matches)
	}
}
