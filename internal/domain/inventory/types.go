package inventory

// Kind distinguishes what a pool's units represent: rooms in a pre-purchased
// hotel block, seats in a group allocation, or seats on a packaged trip.
type Kind string

const (
	KindBlock         Kind = "block"
	KindGroup         Kind = "group"
	KindNational      Kind = "national"
	KindInternational Kind = "international"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBlock, KindGroup, KindNational, KindInternational:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive    Status = "active"
	StatusExhausted Status = "exhausted"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExhausted, StatusClosed:
		return true
	default:
		return false
	}
}
