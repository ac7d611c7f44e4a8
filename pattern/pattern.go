// Package pattern runs the BulletML volleys fired by the mini-boss and the
// boss. Each volley is an Emitter driven once per tick; the bullets it
// fires are handed to the caller, which owns and updates them.
package pattern

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tsujio/go-bulletml"
)

//go:embed patterns/*.xml
var patternFS embed.FS

// Name identifies an embedded pattern.
type Name string

const (
	MiniBossFan Name = "miniboss_fan"
	BossSpiral  Name = "boss_spiral"
	BossRain    Name = "boss_rain"
)

var (
	cacheMu sync.Mutex
	cache   = map[Name]*bulletml.BulletML{}
)

// Names lists the embedded patterns.
func Names() []Name {
	entries, err := patternFS.ReadDir("patterns")
	if err != nil {
		return nil
	}
	names := make([]Name, 0, len(entries))
	for _, e := range entries {
		names = append(names, Name(strings.TrimSuffix(e.Name(), ".xml")))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Load parses the named pattern. Parsed patterns are cached.
func Load(name Name) (*bulletml.BulletML, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if bml, ok := cache[name]; ok {
		return bml, nil
	}
	data, err := patternFS.ReadFile("patterns/" + string(name) + ".xml")
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", name, err)
	}
	bml, err := bulletml.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pattern %q: parse: %w", name, err)
	}
	cache[name] = bml
	return bml, nil
}

// Bullet is a fired pattern bullet. The receiver owns it and must call
// Update once per tick until Vanished reports true.
type Bullet interface {
	Update() error
	Position() (float64, float64)
	Vanished() bool
}

// Options wires an emitter to the game.
type Options struct {
	// Shooter returns the current muzzle position.
	Shooter func() (float64, float64)
	// Target returns the position aimed at, normally the player centre.
	Target func() (float64, float64)
	// OnFire receives every bullet the pattern fires.
	OnFire func(Bullet)
}

// Emitter is one running volley.
type Emitter struct {
	Name   Name
	runner bulletml.Runner
	ticks  int
}

// NewEmitter starts the named pattern.
func NewEmitter(name Name, opts Options) (*Emitter, error) {
	bml, err := Load(name)
	if err != nil {
		return nil, err
	}
	if opts.Shooter == nil || opts.Target == nil || opts.OnFire == nil {
		return nil, fmt.Errorf("pattern %q: incomplete options", name)
	}
	runner, err := bulletml.NewRunner(bml, &bulletml.NewRunnerOptions{
		OnBulletFired: func(br bulletml.BulletRunner, _ *bulletml.FireContext) {
			opts.OnFire(br)
		},
		CurrentShootPosition:  opts.Shooter,
		CurrentTargetPosition: opts.Target,
	})
	if err != nil {
		return nil, fmt.Errorf("pattern %q: runner: %w", name, err)
	}
	return &Emitter{Name: name, runner: runner}, nil
}

// Update advances the volley by one tick.
func (e *Emitter) Update() error {
	e.ticks++
	if err := e.runner.Update(); err != nil {
		return fmt.Errorf("pattern %q: tick %d: %w", e.Name, e.ticks, err)
	}
	return nil
}

// Ticks returns how many times the emitter was updated.
func (e *Emitter) Ticks() int {
	return e.ticks
}
