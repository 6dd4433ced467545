package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
)

type sample struct {
	Name string `validate:"required"`
	Text string `validate:"max=3"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Name: "x", Text: "abc"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStruct_WrapsInvalid(t *testing.T) {
	err := Struct(sample{Name: "", Text: "ok"})
	if !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestStruct_MaxCountsCharacters(t *testing.T) {
	// three runes, nine bytes
	if err := Struct(sample{Name: "x", Text: "日本語"}); err != nil {
		t.Fatalf("expected runes to be counted, got %v", err)
	}
	err := Struct(sample{Name: "x", Text: "abcd"})
	if !errors.Is(err, errs.ErrInvalid) || !strings.Contains(err.Error(), "at most 3") {
		t.Fatalf("unexpected error: %v", err)
	}
}

type domainRules struct {
	Password    string `validate:"password"`
	MessageText string `validate:"message_text"`
}

func TestStruct_DomainAliasesFollowConstants(t *testing.T) {
	ok := domainRules{
		Password:    strings.Repeat("p", social.MinPasswordLen),
		MessageText: strings.Repeat("é", social.MaxMessageLen),
	}
	if err := Struct(ok); err != nil {
		t.Fatalf("expected values at the bounds to pass, got %v", err)
	}

	short := ok
	short.Password = strings.Repeat("p", social.MinPasswordLen-1)
	err := Struct(short)
	if !errors.Is(err, errs.ErrInvalid) || !strings.Contains(err.Error(), fmt.Sprintf("password must be at least %d", social.MinPasswordLen)) {
		t.Fatalf("unexpected error: %v", err)
	}

	long := ok
	long.MessageText = strings.Repeat("a", social.MaxMessageLen+1)
	err = Struct(long)
	if !errors.Is(err, errs.ErrInvalid) || !strings.Contains(err.Error(), fmt.Sprintf("messageText must be at most %d", social.MaxMessageLen)) {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := ok
	empty.MessageText = ""
	err = Struct(empty)
	if !errors.Is(err, errs.ErrInvalid) || !strings.Contains(err.Error(), "messageText is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
