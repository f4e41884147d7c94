package rtx

import (
	"testing"
)

func TestLookupProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "default", input: "", want: "nv"},
		{name: "nv", input: "nv", want: "nv"},
		{name: "case and space", input: "  NV-Bind-Trace ", want: "nv-bind-trace"},
		{name: "unknown", input: "khr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LookupProfile(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name != tt.want {
				t.Errorf("got profile %q, want %q", p.Name, tt.want)
			}
		})
	}
}

func TestProfileRequired(t *testing.T) {
	if got := len(ProfileNV.Required()); got != 3 {
		t.Errorf("ProfileNV requires %d procs, want 3", got)
	}
	req := ProfileNVBindTrace.Required()
	if len(req) != 2 || req[0] != "glBindRayTracingPipelineNV" || req[1] != "glTraceRaysNV" {
		t.Errorf("unexpected bind/trace requirements: %v", req)
	}
}

func TestProfileValidate(t *testing.T) {
	p := ProfileNV
	if err := p.Validate(); err != nil {
		t.Fatalf("ProfileNV invalid: %v", err)
	}

	p.TraceRays = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error for empty trace symbol")
	}

	p = ProfileNVBindTrace
	p.CreatePipelines = ""
	if err := p.Validate(); err != nil {
		t.Errorf("create symbol is optional for bind/trace profile: %v", err)
	}
}

func TestTraceRaysParamsArgsOrder(t *testing.T) {
	p := RegionParams(SBTRegion{Buffer: 9, Offset: 8, Stride: 7}, 640, 480)
	args := p.Args()
	if len(args) != 15 {
		t.Fatalf("got %d args, want 15", len(args))
	}
	if args[12] != 640 || args[13] != 480 || args[14] != 1 {
		t.Errorf("extent mismatch: %v", args[12:])
	}
	for g := 0; g < 4; g++ {
		if args[g*3] != 9 || args[g*3+1] != 8 || args[g*3+2] != 7 {
			t.Errorf("group %d region mismatch: %v", g, args[g*3:g*3+3])
		}
	}
}
