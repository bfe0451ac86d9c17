package parameter

// Camera
const (
	CameraEyeX    = 0.0
	CameraEyeY    = 8.0
	CameraEyeZ    = 12.0
	CameraTargetX = 0.0
	CameraTargetY = 1.0
	CameraTargetZ = 0.0
	CameraFovY    = 75.0
	CameraNear    = 0.1
	CameraFar     = 1000.0
)

// Lighting
const (
	AmbientIntensity = 0.5

	MainLightX         = 10.0
	MainLightY         = 15.0
	MainLightZ         = 10.0
	MainLightIntensity = 1.0
	MainLightHex       = "#ffffff"

	FillLightX         = -5.0
	FillLightY         = 10.0
	FillLightZ         = -5.0
	FillLightIntensity = 0.5
	FillLightHex       = "#6688ff"

	// Accent point lights orbit the table at AccentOrbitRadius
	AccentOrbitRadius = 6.0
	AccentHeight      = 5.0
	AccentIntensity   = 1.0
	AccentRange       = 20.0
	Accent1Hex        = "#ff0066"
	Accent1Rate       = 0.5
	Accent2Hex        = "#00ffff"
	Accent2Rate       = 0.7
)

// Materials
const (
	DieFaceHex   = "#ffffff"
	DiePipHex    = "#000000"
	DieBorderHex = "#333333"
	TableHex     = "#0e4d0e"
	FeltLineHex  = "#0a3d0a"
	RailHex      = "#654321"
	CupHex       = "#8b4513"
	CupInsideHex = "#3a1d08"
	ShadowHex    = "#072607"
)

// Table dressing
const (
	FeltLineHalfLength = 7.0
	FeltLineHalfWidth  = 0.05
	FeltLineCount      = 4 // lines at z = -n..n
	RailHeight         = 0.3
	RailThickness      = 0.5
	CupX               = -5.0
	CupZ               = -3.0
	CupTopRadius       = 1.5
	CupBottomRadius    = 1.2
	CupHeight          = 1.0
	CupSegments        = 16
	ShadowSegments     = 12
)

// Shadow falloff: radius scales from near to far and colour blends toward the felt
// as the die rises ShadowFadeHeight above rest
const (
	ShadowFadeHeight = 6.0
	ShadowNearScale  = 1.3
	ShadowFarScale   = 0.6
	ShadowMaxFade    = 0.6
)

// Pip layout on a face, in face-local units where the face spans [-1, 1]
// Derived from a 256px canvas with dots at 64/128/192 and radius 20
const (
	PipOffset = 0.5
	PipRadius = 20.0 / 128.0
)
