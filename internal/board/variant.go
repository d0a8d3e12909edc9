package board

import "fmt"

// MovePolicy decides how a direction key interacts with the current facing.
type MovePolicy uint8

const (
	// StrictTurnThenStep turns on the first press and steps on the next.
	StrictTurnThenStep MovePolicy = iota
	// AlwaysStepAfterFacing turns and steps on the same press.
	AlwaysStepAfterFacing
)

// String returns the policy name used in configuration.
func (p MovePolicy) String() string {
	switch p {
	case StrictTurnThenStep:
		return "turn-then-step"
	case AlwaysStepAfterFacing:
		return "always-step"
	default:
		return "unknown"
	}
}

// ParseMovePolicy converts a configuration string to a MovePolicy.
func ParseMovePolicy(s string) (MovePolicy, error) {
	switch s {
	case "turn-then-step", "strict":
		return StrictTurnThenStep, nil
	case "always-step", "always":
		return AlwaysStepAfterFacing, nil
	default:
		return StrictTurnThenStep, fmt.Errorf("board: unknown move policy %q", s)
	}
}

// GoalPolicy selects how 'G' tokens become goals.
type GoalPolicy uint8

const (
	// SingleGoal keeps one goal; the last 'G' on the map wins.
	SingleGoal GoalPolicy = iota
	// ManyGoals turns every 'G' into a goal.
	ManyGoals
)

// ActionKind selects what the action key does.
type ActionKind uint8

const (
	ActionShoot ActionKind = iota
	ActionToggleBridge
)

// Variant bundles everything that differs between the game variants.
type Variant struct {
	ID           string
	Title        string
	Legend       Legend
	Policy       MovePolicy
	Goals        GoalPolicy
	Action       ActionKind
	Bridges      BridgeStyle
	StartBridges int
	MaxBridges   int
}

// Variant IDs.
const (
	VariantSplit  = "split"
	VariantPaint  = "paint"
	VariantStreak = "streak"
	VariantBuild  = "build"
)

// SplitVariant is the classic map-splitting game.
func SplitVariant() Variant {
	return Variant{
		ID:     VariantSplit,
		Title:  "Split",
		Legend: SplitLegend(),
		Policy: StrictTurnThenStep,
		Action: ActionShoot,
	}
}

// PaintVariant splits like SplitVariant but steps on every direction key.
func PaintVariant() Variant {
	return Variant{
		ID:     VariantPaint,
		Title:  "Split (Paint)",
		Legend: SplitLegend(),
		Policy: AlwaysStepAfterFacing,
		Goals:  ManyGoals,
		Action: ActionShoot,
	}
}

// StreakVariant builds oriented bridges over water streaks.
func StreakVariant() Variant {
	return Variant{
		ID:         VariantStreak,
		Title:      "Bridges (Streak)",
		Legend:     StreakLegend(),
		Policy:     StrictTurnThenStep,
		Action:     ActionToggleBridge,
		Bridges:    BridgeOriented,
		MaxBridges: 1,
	}
}

// BuildVariant builds undirected bridges over water streaks.
func BuildVariant() Variant {
	return Variant{
		ID:         VariantBuild,
		Title:      "Bridges (Build)",
		Legend:     BuildLegend(),
		Policy:     StrictTurnThenStep,
		Action:     ActionToggleBridge,
		Bridges:    BridgeUndirected,
		MaxBridges: 1,
	}
}

// Variants returns the built-in variants in display order.
func Variants() []Variant {
	return []Variant{SplitVariant(), PaintVariant(), StreakVariant(), BuildVariant()}
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, error) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("board: unknown variant %q", id)
}
