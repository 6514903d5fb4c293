package converter

import (
	"health-appointment-service/internal/delivery/dto"
	"health-appointment-service/internal/domain/entity"
)

// UserToResponse converts a User entity to a UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Profile:  user.Profile(),
	}
}
