package dto

import "github.com/google/uuid"

// DeleteResponse echoes the removed entity's id, matching what board views
// need to drop the entity locally.
type DeleteResponse struct {
	ID uuid.UUID `json:"id"`
}
