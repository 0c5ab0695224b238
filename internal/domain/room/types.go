package room

type Type string

const (
	TypeNormal  Type = "Normal"
	TypeDeluxe  Type = "Deluxe"
	TypePremium Type = "Premium"
	TypeSuite   Type = "Suite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeNormal, TypeDeluxe, TypePremium, TypeSuite:
		return true
	default:
		return false
	}
}

type ACType string

const (
	WithAC    ACType = "AC"
	WithoutAC ACType = "Non-AC"
)

func (a ACType) String() string {
	return string(a)
}

func (a ACType) IsValid() bool {
	switch a {
	case WithAC, WithoutAC:
		return true
	default:
		return false
	}
}

// Status is derived state: a room is "booked" exactly while at least one
// active booking references it; "maintenance" is operator-set and never
// changed by booking mutations.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusMaintenance:
		return true
	default:
		return false
	}
}
