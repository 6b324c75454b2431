package system

import (
	"log"

	"github.com/milk9111/shooter/ecs"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/ecs/entity"
	"github.com/milk9111/shooter/prefabs"
)

// ReloadSystem applies prefab changes requested by the watcher. A prefab
// that fails to load or validate is logged and the running one is kept.
type ReloadSystem struct {
	CharacterPrefab string
	LevelPrefab     string
	Sounds          entity.SoundLoader
}

func NewReloadSystem(characterPrefab, levelPrefab string, sounds entity.SoundLoader) *ReloadSystem {
	return &ReloadSystem{
		CharacterPrefab: characterPrefab,
		LevelPrefab:     levelPrefab,
		Sounds:          sounds,
	}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var (
		requests []ecs.Entity
		want     component.ReloadRequest
	)
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.ReloadRequest) {
		requests = append(requests, e)
		want.Character = want.Character || req.Character
		want.Level = want.Level || req.Level
	})
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}
	if !want.Character && !want.Level {
		return
	}

	lvl, ok := entity.CurrentLevel(w)
	if !ok {
		log.Printf("reload: no level loaded")
		return
	}

	if want.Level {
		spec, err := prefabs.LoadLevelSpec(s.LevelPrefab)
		if err != nil {
			log.Printf("reload: level %q: %v", s.LevelPrefab, err)
			want.Level = false
		} else if err := entity.ReplaceLevel(lvl, spec); err != nil {
			log.Printf("reload: level %q: %v", s.LevelPrefab, err)
			want.Level = false
		} else {
			log.Printf("reload: level %q", s.LevelPrefab)
		}
	}

	var charSpec *prefabs.CharacterSpec
	if want.Character {
		spec, err := prefabs.LoadCharacterSpec(s.CharacterPrefab)
		if err != nil {
			log.Printf("reload: character %q: %v", s.CharacterPrefab, err)
			want.Character = false
		} else {
			charSpec = spec
		}
	}
	if !want.Character && !want.Level {
		return
	}

	var players []ecs.Entity
	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		players = append(players, e)
	})
	for _, e := range players {
		spec := charSpec
		if spec == nil {
			ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
			if !ok {
				continue
			}
			spec = ch.Spec
		}
		if err := entity.RebuildCharacter(w, e, spec, lvl, s.Sounds); err != nil {
			log.Printf("reload: player %v: %v", e, err)
			continue
		}
		log.Printf("reload: rebuilt player %v", e)
	}
}
