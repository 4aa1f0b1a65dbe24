package components

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindRobot:
		return "Robot"
	case KindLight:
		return "Light"
	case KindFood:
		return "Food"
	case KindRightWall:
		return "RightWall"
	case KindLeftWall:
		return "LeftWall"
	case KindTopWall:
		return "TopWall"
	case KindBottomWall:
		return "BottomWall"
	default:
		return "Undefined"
	}
}

// String returns the display name for a Behavior.
func (b Behavior) String() string {
	names := BehaviorNames()
	if int(b) < len(names) {
		return names[b]
	}
	return "Unknown"
}

// BehaviorNames returns the display names for all behaviors.
// The order matches the Behavior constants.
func BehaviorNames() []string {
	return []string{"Fear", "Explore", "Love", "Aggressive"}
}

// ParseBehavior maps a lowercase or display name to a Behavior.
func ParseBehavior(s string) (Behavior, bool) {
	switch s {
	case "fear", "Fear":
		return BehaviorFear, true
	case "explore", "Explore":
		return BehaviorExplore, true
	case "love", "Love":
		return BehaviorLove, true
	case "aggressive", "Aggressive":
		return BehaviorAggressive, true
	}
	return 0, false
}

// String returns the display name for a SensorKind.
func (k SensorKind) String() string {
	if k == SensorFood {
		return "Food"
	}
	return "Light"
}
