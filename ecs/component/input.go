package component

// Input stores the axis values and button edges sampled for one frame.
type Input struct {
	MoveForward float64
	MoveRight   float64

	// Gamepad rates in [-1, 1].
	TurnRate   float64
	LookUpRate float64

	// Mouse axes.
	Turn   float64
	LookUp float64

	JumpPressed  bool
	JumpReleased bool
	FirePressed  bool
	AimPressed   bool
	AimReleased  bool
}

var InputComponent = NewComponent[Input]()
