package ast

import "testing"

func TestEveryRegisteredTagHasName(t *testing.T) {
	for tag := range registry {
		if _, ok := tagNames[tag]; !ok {
			t.Errorf("tag %q has no name", byte(tag))
		}
	}
	if len(registry)+1 != len(tagNames) {
		t.Errorf("registry has %d tags, name table %d (expected registry + empty)", len(registry), len(tagNames))
	}
}

func TestEmptyTagNotRegistered(t *testing.T) {
	if Known(TagEmpty) {
		t.Error("TagEmpty must not have a constructor")
	}
}

func TestConstructorsReportTheirTag(t *testing.T) {
	for tag, ctor := range registry {
		if got := ctor().Tag(); got != tag {
			t.Errorf("constructor for %v builds node reporting %v", tag, got)
		}
	}
}

func TestTagString(t *testing.T) {
	if got := TagProgram.String(); got != "Program" {
		t.Errorf("TagProgram.String() = %q", got)
	}
	if got := Tag(0x01).String(); got != "Tag(0x01)" {
		t.Errorf("unknown tag String() = %q", got)
	}
}
