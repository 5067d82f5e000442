package growthservice

// Cumulative XP thresholds for levels 1-8. Band widths are intentionally
// non-uniform: 100, 100, 150, 150, 200, 250, 300.
var levelThresholds = []int64{0, 100, 200, 350, 500, 700, 950, 1250}

// Each level past 8 takes another 300 XP.
const xpPerExtraLevel int64 = 300

// Tree stages shown for levels 1-8; levels above 8 keep the last label.
var treeStages = []string{
	"The seed is settling in!",
	"The seed has sprouted!",
	"A sprout is growing!",
	"The leaves are filling out!",
	"You have a small tree!",
	"The tree is growing tall!",
	"You have a big tree!",
	"The tree is bearing fruit!",
}

// LevelFor maps accumulated XP to a level. A user exactly on a threshold is
// in the higher level.
func LevelFor(xp int64) int {
	last := len(levelThresholds) - 1
	if xp >= levelThresholds[last] {
		return last + 1 + int((xp-levelThresholds[last])/xpPerExtraLevel)
	}
	for i := last - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

type Progress struct {
	XPToNextLevel   int64
	ProgressPercent int
}

// ProgressFor computes the position inside the level's XP band. Past level 8
// the bands are synthetic, 300 XP wide each.
func ProgressFor(xp int64, level int) Progress {
	var bandStart, bandEnd int64
	if level < len(levelThresholds) {
		bandStart = levelThresholds[level-1]
		bandEnd = levelThresholds[level]
	} else {
		bandStart = levelThresholds[len(levelThresholds)-1] + int64(level-len(levelThresholds))*xpPerExtraLevel
		bandEnd = bandStart + xpPerExtraLevel
	}
	return Progress{
		XPToNextLevel:   bandEnd - xp,
		ProgressPercent: int(100 * (xp - bandStart) / (bandEnd - bandStart)),
	}
}

// StageFor maps a level to the capped cosmetic tree stage. The numeric level
// keeps growing; the stage saturates at 8.
func StageFor(level int) (int, string) {
	stage := level
	if stage > len(treeStages) {
		stage = len(treeStages)
	}
	if stage < 1 {
		stage = 1
	}
	return stage, treeStages[stage-1]
}
