package types

import "github.com/google/uuid"

// DreamID is the unique identifier of a dream record
type DreamID string

// NewDreamID generates a new random DreamID
func NewDreamID() DreamID {
	return DreamID(uuid.New().String())
}

// String returns the string representation of the dream ID
func (id DreamID) String() string {
	return string(id)
}
