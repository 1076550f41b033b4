package algorithm

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielpatrickdp/pref-align/go-trainer/internal/config"
)

func TestDefaultRegistryKnowsBuiltins(t *testing.T) {
	reg := DefaultRegistry()
	names := reg.Names()
	if len(names) != 2 || names[0] != "dpo" || names[1] != "ppo" {
		t.Fatalf("expected [dpo ppo], got %v", names)
	}

	for _, name := range names {
		p, err := reg.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve %s: %v", name, err)
		}
		if p.Name() != name {
			t.Fatalf("plugin reports name %q, registered as %q", p.Name(), name)
		}
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("dpo", func() Plugin { return NewDPO() }); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := reg.Register("dpo", func() Plugin { return NewDPO() })
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error for duplicate, got %v", err)
	}
	if cerr.Field != "algorithm" {
		t.Fatalf("expected algorithm field, got %q", cerr.Field)
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("", func() Plugin { return NewDPO() }); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestResolveUnknownNamesAvailable(t *testing.T) {
	reg := DefaultRegistry()
	_, err := reg.Resolve("grpo")
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
	if !strings.Contains(cerr.Reason, "dpo") || !strings.Contains(cerr.Reason, "ppo") {
		t.Fatalf("error should list available algorithms: %q", cerr.Reason)
	}
}
