package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("key_must_be_a_string", nil); msg != "key must be a string" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("key_must_be_a_string", nil); msg == "key must be a string" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected the code itself, got %q", msg)
	}
}

func TestTranslator_Data(t *testing.T) {
	if msg := T("unsupported_type", map[string]string{"type": "chan int"}); msg != "unsupported type chan int" {
		t.Fatalf("unexpected message %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("io", nil); msg != "X:io" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
}
