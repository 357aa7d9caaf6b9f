package sim

// Step advances physics and every scrolling entity by one frame.
// It does not resolve collisions; see Resolve.
func Step(w *World) {
	w.Frame++

	ApplyGravity(&w.Player, w.Params.Gravity, w.Params.Band())

	if w.Mode == ModeEndless {
		w.SpawnTimer++
		if w.SpawnTimer > w.Params.SpawnInterval {
			spawnObstacle(w)
			w.SpawnTimer = 0
		}
	}

	scroll(w.Play, w.Params.ScrollSpeed)
	cull(w.Play)
}

// spawnObstacle appends one obstacle resting on the ground at the right edge.
func spawnObstacle(w *World) {
	size := w.Params.ObstacleSize
	w.Play.Obstacles = append(w.Play.Obstacles, Obstacle{
		X:      w.Params.WorldWidth,
		Y:      w.Params.GroundLine - size,
		W:      size,
		H:      size,
		Deadly: true,
	})
}

// scroll moves every level entity left by speed.
func scroll(s *PlayState, speed float64) {
	for i := range s.Obstacles {
		s.Obstacles[i].X -= speed
	}
	for i := range s.Pickups {
		s.Pickups[i].X -= speed
	}
	for i := range s.Portals {
		s.Portals[i].X -= speed
	}
	if s.Finish != nil {
		s.Finish.X -= speed
	}
}

// cull drops entities whose right edge has passed the left screen boundary.
// The finish marker is kept; it is cleared only by touching it or a restart.
func cull(s *PlayState) {
	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.X+o.W >= 0 {
			obstacles = append(obstacles, o)
		}
	}
	s.Obstacles = obstacles

	pickups := s.Pickups[:0]
	for _, p := range s.Pickups {
		if p.X+p.W >= 0 {
			pickups = append(pickups, p)
		}
	}
	s.Pickups = pickups

	portals := s.Portals[:0]
	for _, p := range s.Portals {
		if p.X+p.W >= 0 {
			portals = append(portals, p)
		}
	}
	s.Portals = portals
}
