// Package rtxtest provides a recording driver for exercising rtx without a GPU.
package rtxtest

import (
	"slices"

	"github.com/cwbudde/restirnv/internal/rtx"
)

// Call is one recorded entry point invocation.
type Call struct {
	Proc string
	Args []uint32
}

// Driver is an in-memory rtx.Driver. Every resolved proc appends to Calls.
type Driver struct {
	// Extensions lists the advertised extension names.
	Extensions []string
	// Missing lists symbols ProcAddress reports as unresolved.
	Missing []string

	Calls   []Call
	Lookups []string

	procs map[string]*Proc
}

// NewDriver returns a driver advertising the extension of profile with
// every symbol resolvable.
func NewDriver(profile rtx.Profile) *Driver {
	return &Driver{Extensions: []string{profile.Extension}}
}

// ExtensionSupported implements rtx.Driver.
func (d *Driver) ExtensionSupported(name string) bool {
	return slices.Contains(d.Extensions, name)
}

// ProcAddress implements rtx.Driver. Repeated lookups of a symbol return the
// same *Proc.
func (d *Driver) ProcAddress(name string) rtx.Proc {
	d.Lookups = append(d.Lookups, name)
	if slices.Contains(d.Missing, name) {
		return nil
	}
	if d.procs == nil {
		d.procs = make(map[string]*Proc)
	}
	p, ok := d.procs[name]
	if !ok {
		p = &Proc{Name: name, driver: d}
		d.procs[name] = p
	}
	return p
}

// CallsTo returns the recorded calls of the named proc.
func (d *Driver) CallsTo(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Proc == name {
			out = append(out, c)
		}
	}
	return out
}

// Proc records calls on its driver.
type Proc struct {
	Name   string
	driver *Driver
}

// Call implements rtx.Proc.
func (p *Proc) Call(args ...uint32) {
	p.driver.Calls = append(p.driver.Calls, Call{Proc: p.Name, Args: slices.Clone(args)})
}
