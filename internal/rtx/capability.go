package rtx

// capability is the state of the extension for one context. It is either
// unavailable or bound; there is no partially resolved form.
type capability interface {
	bindPipeline(pipeline PipelineHandle) error
	traceRays(p TraceRaysParams) error
}

type unavailable struct{}

func (unavailable) bindPipeline(PipelineHandle) error { return ErrNotInitialized }
func (unavailable) traceRays(TraceRaysParams) error { return ErrNotInitialized }

// bound holds the resolved entry points. createPipelines is nil when the
// profile does not require it and the driver did not export it.
type bound struct {
	createPipelines Proc
	bind            Proc
	trace           Proc
}

func (b *bound) bindPipeline(pipeline PipelineHandle) error {
	b.bind.Call(uint32(pipeline))
	return nil
}

func (b *bound) traceRays(p TraceRaysParams) error {
	b.trace.Call(p.Args()...)
	return nil
}

// resolve looks up every entry point of profile. It returns nil and the
// first missing symbol when any required entry point is absent.
func resolve(driver Driver, profile Profile) (*bound, error) {
	procs := make(map[string]Proc, 3)
	for _, name := range profile.Required() {
		proc := driver.ProcAddress(name)
		if proc == nil {
			return nil, &MissingProcError{Name: name}
		}
		procs[name] = proc
	}

	b := &bound{
		bind:  procs[profile.BindPipeline],
		trace: procs[profile.TraceRays],
	}
	switch {
	case profile.RequireCreate:
		b.createPipelines = procs[profile.CreatePipelines]
	case profile.CreatePipelines != "":
		b.createPipelines = driver.ProcAddress(profile.CreatePipelines)
	}
	return b, nil
}
