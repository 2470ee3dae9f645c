package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/notes.yaml
var defaultNotesYAML []byte

// DefaultBreakoutConfig returns the default brick breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:  480,
			Height: 320,
		},
		Ball: BreakoutBall{
			Radius:       10,
			DX:           2,
			DY:           -2,
			StartOffsetY: 30,
		},
		Paddle: BreakoutPaddle{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BreakoutBricks{
			Rows:       5,
			Columns:    8,
			Width:      50,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 25,
		},
		Palette: BreakoutPalette{
			Ball:   "#d4a5a5",
			Paddle: "#6b4f4f",
			Brick:  "#e8d3d3",
			Text:   "#6b4f4f",
		},
		Text: BreakoutText{
			FontFamily:  "Arial",
			ScoreSize:   16,
			PromptSize:  18,
			Prompt:      "Click to Start",
			WonMessage:  "Congratulations! You won!",
			LostMessage: "Game Over",
		},
		Input: BreakoutInput{
			FirstRepeatMS: 150,
			RepeatMS:      120,
		},
	}
}

// DefaultNotesConfig returns the default notes configuration.
func DefaultNotesConfig() NotesConfig {
	return NotesConfig{
		StorageKey: "gameNotes",
		ListLimit:  0,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "breakout":
		return defaultBreakoutYAML
	case "notes":
		return defaultNotesYAML
	default:
		return nil
	}
}
