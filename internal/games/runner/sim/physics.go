package sim

// ApplyGravity integrates one frame of vertical motion and clamps the player
// into the band. Velocity is updated before position.
func ApplyGravity(p *Player, gravity float64, band Band) {
	if p.Flipped() {
		p.VelY -= gravity
	} else {
		p.VelY += gravity
	}
	p.Y += p.VelY

	ClampToBand(p, band)
}

// ClampToBand keeps the player between the rails. Touching either rail zeroes
// velocity; only the rail matching the current polarity counts as ground.
func ClampToBand(p *Player, band Band) {
	p.OnGround = false

	switch {
	case p.Y >= band.GroundY:
		p.Y = band.GroundY
		p.VelY = 0
		p.OnGround = !p.Flipped()
	case p.Y <= band.CeilingY:
		p.Y = band.CeilingY
		p.VelY = 0
		p.OnGround = p.Flipped()
	}
}

// Jump launches the player away from its current rail. Requests while
// airborne are ignored and report false.
func Jump(p *Player, force float64, band Band) bool {
	if !p.OnGround && !atRail(p, band) {
		return false
	}

	if p.Flipped() {
		p.VelY = -force
	} else {
		p.VelY = force
	}
	p.OnGround = false
	return true
}

// Boost overrides the velocity with a stronger jump in the current direction.
// It applies in mid-air as well.
func Boost(p *Player, force, multiplier float64) {
	v := force * multiplier
	if p.Flipped() {
		v = -v
	}
	p.VelY = v
	p.OnGround = false
}

// Flip toggles the polarity. The player leaves the rail it was resting on.
func Flip(p *Player) {
	if p.Flipped() {
		p.Polarity = PolarityNormal
	} else {
		p.Polarity = PolarityFlipped
	}
	p.OnGround = false
}

// atRail reports whether the player sits exactly on the rail of its polarity.
func atRail(p *Player, band Band) bool {
	if p.Flipped() {
		return p.Y == band.CeilingY
	}
	return p.Y == band.GroundY
}
