package converter

import (
	"legal-consult-api/internal/delivery/dto"
	"legal-consult-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the lawyer profile if it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.LawyerProfile != nil {
		response.LawyerProfile = LawyerProfileToResponse(user.LawyerProfile)
	}

	return response
}
