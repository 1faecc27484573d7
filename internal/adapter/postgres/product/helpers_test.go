package product

import "github.com/google/uuid"

// idCapture is a pgxmock.Argument that records the UUID it was matched against.
type idCapture struct {
	dst *uuid.UUID
}

func (c idCapture) Match(v any) bool {
	id, ok := v.(uuid.UUID)
	if ok {
		*c.dst = id
	}
	return ok
}
