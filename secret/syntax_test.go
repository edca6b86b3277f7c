package secret

import (
	"errors"
	"testing"
)

func TestMatcher_NoReferences(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	matches, err := m.FindAll("plain value with no references")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("FindAll() = %#v, want none", matches)
	}
}

func TestMatcher_SingleReference(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	matches, err := m.FindAll("pre-$(taemno os://svc/acct)-post")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("FindAll() returned %d matches, want 1", len(matches))
	}
	got := matches[0]
	if got.Text != "$(taemno os://svc/acct)" || got.Service != "svc" || got.Account != "acct" {
		t.Fatalf("unexpected match: %#v", got)
	}
}

func TestMatcher_MultipleReferences(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	matches, err := m.FindAll("$(taemno os://s1/a1) and $(taemno os://s2/a2)")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("FindAll() returned %d matches, want 2", len(matches))
	}
	if matches[0].Service != "s1" || matches[1].Service != "s2" {
		t.Fatalf("matches out of order: %#v", matches)
	}
}

func TestMatcher_LazyCaptureStopsAtFirstSuffix(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	// The second ")" must not be absorbed into the capture.
	matches, err := m.FindAll("$(taemno os://svc/acct) (trailing)")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("FindAll() returned %d matches, want 1", len(matches))
	}
	if matches[0].Text != "$(taemno os://svc/acct)" {
		t.Fatalf("capture not lazy: %q", matches[0].Text)
	}
}

func TestMatcher_PrefixMetacharactersAreLiteral(t *testing.T) {
	// The default prefix contains "$(" and the suffix ")", both regexp
	// metacharacters; they must match only as literal text.
	m := NewMatcher(DefaultSyntax())

	matches, err := m.FindAll("taemno os://svc/acct")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("matched without the literal prefix: %#v", matches)
	}
}

func TestMatcher_CustomSyntax(t *testing.T) {
	m := NewMatcher(Syntax{Prefix: "{{secret:", Suffix: "}}"})

	matches, err := m.FindAll("token={{secret:api/token}}")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Service != "api" || matches[0].Account != "token" {
		t.Fatalf("unexpected matches: %#v", matches)
	}
}

func TestMatcher_AccountKeepsExtraSeparators(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	matches, err := m.FindAll("$(taemno os://svc/path/to/key)")
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if matches[0].Service != "svc" || matches[0].Account != "path/to/key" {
		t.Fatalf("capture not split on first separator: %#v", matches[0])
	}
}

func TestMatcher_MalformedReferences(t *testing.T) {
	m := NewMatcher(DefaultSyntax())

	for _, text := range []string{
		"$(taemno os://onlyservice)",
		"$(taemno os:///account)",
		"$(taemno os://service/)",
		"$(taemno os://)",
	} {
		_, err := m.FindAll(text)
		if !errors.Is(err, ErrMalformedReference) {
			t.Fatalf("FindAll(%q) error = %v, want ErrMalformedReference", text, err)
		}
	}
}

func TestMatcher_Restartable(t *testing.T) {
	m := NewMatcher(DefaultSyntax())
	text := "$(taemno os://svc/acct)"

	for i := 0; i < 2; i++ {
		matches, err := m.FindAll(text)
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("scan %d returned %d matches, want 1", i, len(matches))
		}
	}
}
