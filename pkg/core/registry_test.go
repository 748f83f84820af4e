package core

import (
	"testing"
)

func TestRegisterAndGetComponent(t *testing.T) {
	factory := func(player Player, opts Options) (Component, error) {
		return New(player, opts)
	}
	returned := RegisterComponent("Sprocket", factory)
	if returned == nil {
		t.Fatal("RegisterComponent should return the factory")
	}
	if GetComponent("Sprocket") == nil {
		t.Error("registered factory not found")
	}
	if GetComponent("Widget9000") != nil {
		t.Error("unknown name should resolve to nil")
	}
}

func TestRegisterComponentTitleCasesLowercaseNames(t *testing.T) {
	RegisterComponent("flubber", func(player Player, opts Options) (Component, error) {
		return New(player, opts)
	})
	if GetComponent("Flubber") == nil {
		t.Error("lower-case registration should be stored title-cased")
	}
}

func TestRegisterComponentPanicsOnBadArguments(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil factory")
		}
	}()
	RegisterComponent("Broken", nil)
}

func TestBuiltinComponentRegistered(t *testing.T) {
	factory := GetComponent("Component")
	if factory == nil {
		t.Fatal("generic Component type must be registered at load")
	}
	env := newTestEnv()
	c, err := factory(env.player, nil)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if c.El() == nil {
		t.Error("expected an element")
	}
}

func TestLegacyNamespaceFallback(t *testing.T) {
	LegacyComponents["Relic"] = func(player Player, opts Options) (Component, error) {
		return New(player, opts)
	}
	defer delete(LegacyComponents, "Relic")

	if GetComponent("Relic") == nil {
		t.Error("legacy namespace should still resolve")
	}
}

func TestRegisterComponentMinVersionGate(t *testing.T) {
	factory := func(player Player, opts Options) (Component, error) {
		return New(player, opts)
	}

	if _, err := RegisterComponentMin("Modern", "v0.1.0", factory); err != nil {
		t.Errorf("satisfied minimum rejected: %v", err)
	}
	if GetComponent("Modern") == nil {
		t.Error("gated registration missing")
	}

	if _, err := RegisterComponentMin("Futuristic", "v99.0.0", factory); err == nil {
		t.Error("expected rejection for a future minimum version")
	}
	if GetComponent("Futuristic") != nil {
		t.Error("rejected registration must not be stored")
	}

	if _, err := RegisterComponentMin("Sloppy", "1.0", factory); err == nil {
		t.Error("expected rejection for a non-semver minimum")
	}
}
