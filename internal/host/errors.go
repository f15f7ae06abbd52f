package host

import "fmt"

// ErrorCode is a host action result. Zero is success and is never returned as an error.
type ErrorCode int

const (
	ErrNotOwner        ErrorCode = -1
	ErrNoPath          ErrorCode = -2
	ErrNameExists      ErrorCode = -3
	ErrBusy            ErrorCode = -4
	ErrNotFound        ErrorCode = -5
	ErrNotEnoughEnergy ErrorCode = -6
	ErrInvalidTarget   ErrorCode = -7
	ErrFull            ErrorCode = -8
	ErrNotInRange      ErrorCode = -9
	ErrInvalidArgs     ErrorCode = -10
	ErrTired           ErrorCode = -11
	ErrNoBodyPart      ErrorCode = -12
	ErrRclNotEnough    ErrorCode = -14
)

var errorNames = map[ErrorCode]string{
	ErrNotOwner:        "not owner",
	ErrNoPath:          "no path",
	ErrNameExists:      "name exists",
	ErrBusy:            "busy",
	ErrNotFound:        "not found",
	ErrNotEnoughEnergy: "not enough energy",
	ErrInvalidTarget:   "invalid target",
	ErrFull:            "full",
	ErrNotInRange:      "not in range",
	ErrInvalidArgs:     "invalid args",
	ErrTired:           "tired",
	ErrNoBodyPart:      "no body part",
	ErrRclNotEnough:    "rcl not enough",
}

func (e ErrorCode) Error() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("error code %d", int(e))
}
