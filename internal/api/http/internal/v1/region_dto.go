package v1

import (
	"github.com/nzwalks/backend/internal/domain"

	"github.com/google/uuid"
)

type addRegionRequest struct {
	Code           string  `json:"code" binding:"required,notblank,min=3,max=3" example:"AKL"`
	Name           string  `json:"name" binding:"required,notblank,max=100" example:"Auckland"`
	RegionImageURL *string `json:"regionImageUrl" example:"https://images.example/akl.jpg"`
} // @name AddRegionRequest

type updateRegionRequest struct {
	Code           string  `json:"code" binding:"required,notblank,min=3,max=3" example:"AKL"`
	Name           string  `json:"name" binding:"required,notblank,max=100" example:"Auckland"`
	RegionImageURL *string `json:"regionImageUrl" example:"https://images.example/akl.jpg"`
} // @name UpdateRegionRequest

type regionResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageURL *string   `json:"regionImageUrl"`
} // @name RegionResponse

func (r addRegionRequest) toDomain() *domain.Region {
	return &domain.Region{
		Code:           r.Code,
		Name:           r.Name,
		RegionImageURL: r.RegionImageURL,
	}
}

// toDomain leaves ID unset, the route decides which record is updated.
func (r updateRegionRequest) toDomain() *domain.Region {
	return &domain.Region{
		Code:           r.Code,
		Name:           r.Name,
		RegionImageURL: r.RegionImageURL,
	}
}

func newRegionResponse(region *domain.Region) regionResponse {
	return regionResponse{
		ID:             region.ID,
		Code:           region.Code,
		Name:           region.Name,
		RegionImageURL: region.RegionImageURL,
	}
}

func newRegionResponses(regions []domain.Region) []regionResponse {
	out := make([]regionResponse, len(regions))
	for i := range regions {
		out[i] = newRegionResponse(&regions[i])
	}
	return out
}
