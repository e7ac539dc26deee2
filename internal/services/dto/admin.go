package dto

// AdminUserFilter is the query surface for the admin user list.
type AdminUserFilter struct {
	UserType   string `form:"userType" validate:"omitempty,oneof=worker employer admin"`
	IsVerified *bool  `form:"isVerified"`
	Search     string `form:"search" validate:"omitempty,max=100"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// SetVerifiedRequest flips the admin verification flag on an account.
type SetVerifiedRequest struct {
	IsVerified bool `json:"isVerified"`
}

// SetApprovedRequest flips the admin approval flag on a job offer.
type SetApprovedRequest struct {
	IsApproved bool `json:"isApproved"`
}

// PagedUsers is the paginated admin user list.
type PagedUsers struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
