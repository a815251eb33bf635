package sdk

import (
	"testing"

	_ "gcoremcp/toolsets"
)

func TestResolveUsesBuiltinToolsets(t *testing.T) {
	result := Resolve("management", ModeLocal)
	if len(result.Tools) == 0 {
		t.Fatalf("expected management tools")
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %#v", result.Diagnostics)
	}
}

func TestResolveUnknownToolsetDiagnostic(t *testing.T) {
	result := Resolve("bogus_toolset", ModeLocal)
	if len(result.Diagnostics) == 0 || result.Diagnostics[0].Code != DiagUnknownToolset {
		t.Fatalf("expected unknown toolset diagnostic: %#v", result.Diagnostics)
	}
}

func TestCatalogAndToolsetsPopulated(t *testing.T) {
	if len(Catalog()) == 0 {
		t.Fatalf("expected catalog entries")
	}
	if len(Toolsets()) == 0 {
		t.Fatalf("expected registered toolsets")
	}
}

func TestToolsetMembers(t *testing.T) {
	members, ok := ToolsetMembers("management")
	if !ok || len(members) == 0 {
		t.Fatalf("expected management members, got %v, %v", members, ok)
	}
	if members[0] != "cloud.projects.create" {
		t.Fatalf("expected declaration order preserved: %v", members[0])
	}
	if _, ok := ToolsetMembers("bogus_toolset"); ok {
		t.Fatalf("expected miss for unknown toolset")
	}
}

func TestNamingHelpers(t *testing.T) {
	if ShortName("cloud.instances.list") != "cloud.insts.ls" {
		t.Fatalf("unexpected short name: %q", ShortName("cloud.instances.list"))
	}
	if MCPName("cloud.instances.list") != "cloud_insts_ls" {
		t.Fatalf("unexpected mcp name: %q", MCPName("cloud.instances.list"))
	}
}
