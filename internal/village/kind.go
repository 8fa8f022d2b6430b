package village

// Kind is what an agent is (true kind) or looks like (apparent kind).
type Kind int

const (
	// KindUnknown is reported for a behavior outside the closed set below.
	// Seeing it means a programming error, not a game state.
	KindUnknown Kind = iota
	KindHuman
	KindVampire
	KindWerewolf
)

// Kinds lists the playable kinds in report order.
var Kinds = []Kind{KindHuman, KindVampire, KindWerewolf}

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindVampire:
		return "vampire"
	case KindWerewolf:
		return "werewolf"
	default:
		return "unknown"
	}
}

// KillCause records why an agent died. KilledByNone means alive.
type KillCause int

const (
	KilledByNone KillCause = iota
	KilledByStarvation
	KilledByVampire
	KilledByWerewolf
)

func (c KillCause) String() string {
	switch c {
	case KilledByNone:
		return "alive"
	case KilledByStarvation:
		return "starvation"
	case KilledByVampire:
		return "vampire"
	case KilledByWerewolf:
		return "werewolf"
	default:
		return "unknown"
	}
}
