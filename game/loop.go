package game

// Tick advances the simulation by one fixed frame.
func (g *Game) Tick() {
	if g.Paused || g.Over {
		return
	}
	g.Stats.Tick++

	// Delayed shots and ripostes due this frame
	g.Scheduler.Advance()

	// Player input; the ship is parked while the tuning panel is open
	if !g.DebugUI.Visible {
		g.MoveShip(g.Keys)
	}

	// Wave spawning
	g.GenerateEnemies()

	// Movement
	g.UpdateEnemies()
	g.UpdateBosses()
	g.UpdateHazards()
	g.UpdateProjectiles()

	g.Resolve()

	// Shield visuals
	g.Simple.Update()
	g.Riposte.Update()
	g.Spherical.Update()

	g.Particles.Update(g.PlayerCenter(), HEIGHT)
}

// Run advances the simulation by n frames.
func (g *Game) Run(n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}
