package engine

// Scene holds the root nodes that are currently rendered.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, ok := s.uidMap[g.UID]; ok {
		return
	}
	s.GameObjects = append(s.GameObjects, g)
	s.register(g)
}

func (s *Scene) register(g *GameObject) {
	g.Scene = s
	s.uidMap[g.UID] = g
	for _, c := range g.Children {
		s.register(c)
	}
}

func (s *Scene) unregister(g *GameObject) {
	if g.Scene == s {
		g.Scene = nil
	}
	delete(s.uidMap, g.UID)
	for _, c := range g.Children {
		s.unregister(c)
	}
}

// RemoveGameObject removes g and its subtree. Removing a node that is not in
// the scene is a no-op.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unregister(g)
			return
		}
	}
}

// Contains reports whether g is a root node of the scene.
func (s *Scene) Contains(g *GameObject) bool {
	for _, obj := range s.GameObjects {
		if obj == g {
			return true
		}
	}
	return false
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update steps every root node, then drops nodes whose components expired.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
	kept := s.GameObjects[:0]
	for _, g := range s.GameObjects {
		if g.Expired() {
			s.unregister(g)
			continue
		}
		kept = append(kept, g)
	}
	for i := len(kept); i < len(s.GameObjects); i++ {
		s.GameObjects[i] = nil
	}
	s.GameObjects = kept
}
