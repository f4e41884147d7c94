package rtx

import (
	"fmt"
	"strings"
)

// Profile names the extension and the entry points a Context resolves.
type Profile struct {
	Name            string
	Extension       string
	CreatePipelines string
	BindPipeline    string
	TraceRays       string

	// RequireCreate makes pipeline creation part of the all-or-nothing set.
	RequireCreate bool
}

// ProfileNV resolves all three NV entry points.
var ProfileNV = Profile{
	Name:            "nv",
	Extension:       "GL_NV_ray_tracing",
	CreatePipelines: "glCreateRayTracingPipelinesNV",
	BindPipeline:    "glBindRayTracingPipelineNV",
	TraceRays:       "glTraceRaysNV",
	RequireCreate:   true,
}

// ProfileNVBindTrace resolves only binding and dispatch.
var ProfileNVBindTrace = Profile{
	Name:            "nv-bind-trace",
	Extension:       "GL_NV_ray_tracing",
	CreatePipelines: "glCreateRayTracingPipelinesNV",
	BindPipeline:    "glBindRayTracingPipelineNV",
	TraceRays:       "glTraceRaysNV",
}

// Profiles returns the built-in profiles.
func Profiles() []Profile {
	return []Profile{ProfileNV, ProfileNVBindTrace}
}

// LookupProfile maps a profile name to a built-in profile.
func LookupProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileNV.Name:
		return ProfileNV, nil
	case ProfileNVBindTrace.Name:
		return ProfileNVBindTrace, nil
	default:
		return Profile{}, fmt.Errorf("%w: unknown profile %q", ErrInvalidProfile, name)
	}
}

// Required returns the symbol names that must all resolve, in lookup order.
func (p Profile) Required() []string {
	if p.RequireCreate {
		return []string{p.CreatePipelines, p.BindPipeline, p.TraceRays}
	}
	return []string{p.BindPipeline, p.TraceRays}
}

// Validate checks that every required name is set.
func (p Profile) Validate() error {
	if p.Extension == "" {
		return fmt.Errorf("%w: empty extension name", ErrInvalidProfile)
	}
	for _, name := range p.Required() {
		if name == "" {
			return fmt.Errorf("%w: empty entry point name", ErrInvalidProfile)
		}
	}
	return nil
}
