package prefabs

import "fmt"

const (
	ObjectBox    = "box"
	ObjectSphere = "sphere"
)

type ViewportSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObjectSpec is one piece of level geometry. Shape holds the kind specific
// fields and is decoded by BoxShape or SphereShape.
type ObjectSpec struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Blocking *bool     `yaml:"blocking"`
	Color    YAMLColor `yaml:"color"`
	Shape    any       `yaml:"shape"`
}

type BoxShapeSpec struct {
	Min Vec3Spec `yaml:"min"`
	Max Vec3Spec `yaml:"max"`
}

type SphereShapeSpec struct {
	Center Vec3Spec `yaml:"center"`
	Radius float64  `yaml:"radius"`
}

// IsBlocking defaults to true.
func (o ObjectSpec) IsBlocking() bool {
	return o.Blocking == nil || *o.Blocking
}

func (o ObjectSpec) BoxShape() (BoxShapeSpec, error) {
	return DecodeComponentSpec[BoxShapeSpec](o.Shape)
}

func (o ObjectSpec) SphereShape() (SphereShapeSpec, error) {
	return DecodeComponentSpec[SphereShapeSpec](o.Shape)
}

type LevelSpec struct {
	Name     string        `yaml:"name"`
	Viewport ViewportSpec  `yaml:"viewport"`
	FloorZ   float64       `yaml:"floor_z"`
	Spawn    TransformSpec `yaml:"spawn"`
	Objects  []ObjectSpec  `yaml:"objects"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *LevelSpec) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport %vx%v", ErrInvalidSpec, s.Viewport.Width, s.Viewport.Height)
	}
	seen := make(map[string]bool, len(s.Objects))
	for i, o := range s.Objects {
		if o.Name != "" {
			if seen[o.Name] {
				return fmt.Errorf("%w: duplicate object %q", ErrInvalidSpec, o.Name)
			}
			seen[o.Name] = true
		}
		switch o.Kind {
		case ObjectBox:
			if _, err := o.BoxShape(); err != nil {
				return fmt.Errorf("%w: object %d: %v", ErrInvalidSpec, i, err)
			}
		case ObjectSphere:
			sp, err := o.SphereShape()
			if err != nil {
				return fmt.Errorf("%w: object %d: %v", ErrInvalidSpec, i, err)
			}
			if sp.Radius <= 0 {
				return fmt.Errorf("%w: object %d: sphere radius must be positive", ErrInvalidSpec, i)
			}
		default:
			return fmt.Errorf("%w: object %d: unknown kind %q", ErrInvalidSpec, i, o.Kind)
		}
	}
	return nil
}
