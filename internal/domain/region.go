package domain

import (
	"github.com/google/uuid"
)

type Region struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Code           string    `db:"code" json:"code"`
	Name           string    `db:"name" json:"name"`
	RegionImageURL *string   `db:"region_image_url" json:"regionImageUrl"`
}

type RegionAction string

const (
	RegionCreated RegionAction = "created"
	RegionUpdated RegionAction = "updated"
	RegionDeleted RegionAction = "deleted"
)
