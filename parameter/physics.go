package parameter

// Die geometry
const (
	// DieSizeFloat is the edge length of the cube
	DieSizeFloat = 2.0

	// DieHalfExtentFloat is the resting offset of the die center above the table
	DieHalfExtentFloat = DieSizeFloat / 2
)

// Per-step integration constants, tuned for StepRate steps per second
const (
	// GravityFloat is added to vertical velocity every step (units/step²)
	GravityFloat = -0.02

	// RestitutionFloat is the fraction of vertical speed kept (and inverted) on table contact
	RestitutionFloat = 0.5

	// HorizontalContactDampingFloat scales X/Z velocity on table contact
	HorizontalContactDampingFloat = 0.8

	// AngularContactDampingFloat scales angular velocity on table contact
	AngularContactDampingFloat = 0.7

	// AngularDampingFloat scales angular velocity every step, contact or not
	AngularDampingFloat = 0.98

	// SettleBounces is the bounce count that must be exceeded before a roll may settle
	SettleBounces = 5

	// SettleEpsilonFloat is the post-contact vertical speed below which the die settles
	SettleEpsilonFloat = 0.01
)

// Throw generation
const (
	SpawnXMinFloat = -2.0
	SpawnXMaxFloat = 2.0
	SpawnYMinFloat = 5.0
	SpawnYMaxFloat = 7.0
	SpawnZMinFloat = -1.5
	SpawnZMaxFloat = 1.5

	// ThrowSpeedFloat bounds each horizontal launch velocity component to ±value
	ThrowSpeedFloat = 0.15

	// SpinSpeedFloat bounds each angular velocity component to ±value (rad/step)
	SpinSpeedFloat = 0.25
)

// Table containment
const (
	// TableHalfWidthFloat is the half extent of the felt along X
	TableHalfWidthFloat = 7.5

	// TableHalfDepthFloat is the half extent of the felt along Z
	TableHalfDepthFloat = 5.0

	// TableThicknessFloat is the slab height below the felt
	TableThicknessFloat = 0.5

	// WallRestitutionFloat is the horizontal speed kept when hitting a rail
	WallRestitutionFloat = 0.5
)

// Idle float animation, shown before the first roll
const (
	IdleBaseYFloat     = 3.0
	IdleAmplitudeFloat = 0.2

	// IdleTimeStepFloat advances scene time every step; also drives light orbits
	IdleTimeStepFloat = 0.01

	// IdleYawStepFloat is the idle yaw applied every step (radians)
	IdleYawStepFloat = 0.01
)
