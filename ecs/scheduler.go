package ecs

// System is one stage of the frame. Systems see the world in the order
// they were added and share its delta time and event queue.
type System interface {
	Update(w *World)
}

// Scheduler is the ordered frame pipeline behind World.Update. The game
// registers input, movement, character, camera, animation, effects, audio,
// HUD, respawn and reload in that order, so each stage reads state the
// earlier ones wrote this frame.
type Scheduler struct {
	systems []System
}

// NewScheduler builds a pipeline from systems, dropping nil entries.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys to the end of the frame.
func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.systems = append(s.systems, sys)
	}
}

// Update runs one frame.
func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Systems returns a copy of the pipeline in run order.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
