package state

import "github.com/google/uuid"

// SessionID identifies this process when its gestures are relayed to a host.
var SessionID = uuid.NewString()

func newStrokeID() string {
	return uuid.NewString()
}
