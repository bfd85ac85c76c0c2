package config

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Mood picture
	FaceCenterY = 140
	FaceRadius  = 80

	QuestionY = 270
	// The question moves up as the affirmative button grows
	QuestionLiftStep = 8
	QuestionLiftMax  = 24

	FooterY = 584

	// Region both buttons live in
	ContainerX      = 100
	ContainerY      = 330
	ContainerWidth  = 600
	ContainerHeight = 240

	// Button dimensions before scaling
	ButtonHeight  = 44
	ButtonPadding = 24
	ButtonGap     = 16

	HeartSize = 28
)
