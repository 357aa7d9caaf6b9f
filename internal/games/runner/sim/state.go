package sim

// Definition is an immutable level template. Play never mutates it; every
// attempt starts from a fresh Instantiate copy.
type Definition struct {
	ID        string
	Name      string
	Obstacles []Obstacle
	Pickups   []Pickup
	Portals   []Portal
	Finish    *Finish // nil = no finish marker
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	return Definition{
		ID:        d.ID,
		Name:      d.Name,
		Obstacles: cloneSlice(d.Obstacles),
		Pickups:   cloneSlice(d.Pickups),
		Portals:   cloneSlice(d.Portals),
		Finish:    cloneFinish(d.Finish),
	}
}

// PlayState is the mutable per-attempt copy of a level's entities.
type PlayState struct {
	Obstacles []Obstacle
	Pickups   []Pickup
	Portals   []Portal
	Finish    *Finish
}

// Instantiate builds a fresh play state from a definition. The result shares
// no memory with the template.
func Instantiate(def Definition) *PlayState {
	return &PlayState{
		Obstacles: cloneSlice(def.Obstacles),
		Pickups:   cloneSlice(def.Pickups),
		Portals:   cloneSlice(def.Portals),
		Finish:    cloneFinish(def.Finish),
	}
}

// Clone returns a deep copy of the play state.
func (s *PlayState) Clone() *PlayState {
	return &PlayState{
		Obstacles: cloneSlice(s.Obstacles),
		Pickups:   cloneSlice(s.Pickups),
		Portals:   cloneSlice(s.Portals),
		Finish:    cloneFinish(s.Finish),
	}
}

// LevelProvider supplies the ordered list of level templates.
type LevelProvider interface {
	Levels() []Definition
}

// InstantiateLevel looks up a level by index and returns a fresh play state
// along with its template.
func InstantiateLevel(provider LevelProvider, index int) (*PlayState, Definition, error) {
	if provider == nil {
		return nil, Definition{}, configError("levels", "no level provider")
	}

	defs := provider.Levels()
	if len(defs) == 0 {
		return nil, Definition{}, configError("levels", "no levels available")
	}
	if index < 0 || index >= len(defs) {
		return nil, Definition{}, configError("level", "index %d out of range [0, %d)", index, len(defs))
	}

	def := defs[index]
	return Instantiate(def), def, nil
}

// cloneSlice copies a slice of plain value entities. Nil stays nil so that
// clones compare equal to their source.
func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

func cloneFinish(f *Finish) *Finish {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
