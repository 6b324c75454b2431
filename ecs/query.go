package ecs

// entitiesCopy snapshots the dense list so callbacks may mutate other stores.
func (s *sparseSet[T]) entitiesCopy() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
