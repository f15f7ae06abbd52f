package brain

// Role is a creep's behavioral category. It is fixed at spawn time.
type Role uint8

const (
	RoleWorker Role = iota
	RoleBuilder
)

func (r Role) String() string {
	switch r {
	case RoleBuilder:
		return "Builder"
	default:
		return "Worker"
	}
}

// RoleForSeq alternates roles by in-tick spawn sequence: even → Builder, odd → Worker.
func RoleForSeq(seq int) Role {
	if seq%2 == 0 {
		return RoleBuilder
	}
	return RoleWorker
}
