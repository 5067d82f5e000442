package growthservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name          string
		xp            int64
		expectedLevel int
	}{
		{name: "Zero XP is level 1", xp: 0, expectedLevel: 1},
		{name: "Just below first threshold", xp: 99, expectedLevel: 1},
		{name: "Exactly on a threshold moves up", xp: 100, expectedLevel: 2},
		{name: "Inside level 2 band", xp: 199, expectedLevel: 2},
		{name: "Level 3 at 200", xp: 200, expectedLevel: 3},
		{name: "Level 4 band start", xp: 350, expectedLevel: 4},
		{name: "Level 5 band start", xp: 500, expectedLevel: 5},
		{name: "Level 6 band start", xp: 700, expectedLevel: 6},
		{name: "Level 7 band start", xp: 950, expectedLevel: 7},
		{name: "Level 8 at last table threshold", xp: 1250, expectedLevel: 8},
		{name: "Last synthetic-free XP", xp: 1549, expectedLevel: 8},
		{name: "First synthetic band", xp: 1550, expectedLevel: 9},
		{name: "Deep into synthetic bands", xp: 1250 + 300*10, expectedLevel: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLevel, LevelFor(tt.xp))
		})
	}
}

func TestProgressFor(t *testing.T) {
	tests := []struct {
		name            string
		xp              int64
		expectedToNext  int64
		expectedPercent int
	}{
		{name: "Start of level 1", xp: 0, expectedToNext: 100, expectedPercent: 0},
		{name: "Middle of level 1", xp: 50, expectedToNext: 50, expectedPercent: 50},
		{name: "End of level 1", xp: 99, expectedToNext: 1, expectedPercent: 99},
		{name: "Start of level 3 (150-wide band)", xp: 200, expectedToNext: 150, expectedPercent: 0},
		{name: "Middle of level 3", xp: 275, expectedToNext: 75, expectedPercent: 50},
		{name: "Start of level 8 (300-wide band)", xp: 1250, expectedToNext: 300, expectedPercent: 0},
		{name: "Start of first synthetic band", xp: 1550, expectedToNext: 300, expectedPercent: 0},
		{name: "Middle of second synthetic band", xp: 2000, expectedToNext: 150, expectedPercent: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := LevelFor(tt.xp)
			progress := ProgressFor(tt.xp, level)
			assert.Equal(t, tt.expectedToNext, progress.XPToNextLevel)
			assert.Equal(t, tt.expectedPercent, progress.ProgressPercent)
		})
	}
}

func TestProgressForBounds(t *testing.T) {
	for xp := int64(0); xp <= 3000; xp += 7 {
		level := LevelFor(xp)
		progress := ProgressFor(xp, level)
		assert.GreaterOrEqual(t, progress.ProgressPercent, 0, "xp=%d", xp)
		assert.LessOrEqual(t, progress.ProgressPercent, 100, "xp=%d", xp)
		assert.Positive(t, progress.XPToNextLevel, "xp=%d", xp)
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		name          string
		level         int
		expectedStage int
		expectedName  string
	}{
		{name: "Level 1", level: 1, expectedStage: 1, expectedName: "The seed is settling in!"},
		{name: "Level 5", level: 5, expectedStage: 5, expectedName: "You have a small tree!"},
		{name: "Level 8", level: 8, expectedStage: 8, expectedName: "The tree is bearing fruit!"},
		{name: "Level past 8 saturates", level: 12, expectedStage: 8, expectedName: "The tree is bearing fruit!"},
		{name: "Level 0 clamps to 1", level: 0, expectedStage: 1, expectedName: "The seed is settling in!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, name := StageFor(tt.level)
			assert.Equal(t, tt.expectedStage, stage)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}
