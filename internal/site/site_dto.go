package site

type CreateSiteRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Description *string `json:"description"`
}

type UpdateSiteRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Description *string `json:"description"`
}

type SiteResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}
