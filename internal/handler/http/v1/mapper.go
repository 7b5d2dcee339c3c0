package v1

import "github.com/shenikar/community_incident_service/internal/models"

// DTOToIncidentModel преобразует DTO подачи обращения в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		TypeCode:    dto.TypeCode,
		Description: dto.Description,
		Location:    dto.Location,
		Contact:     dto.Contact,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		TypeCode:    model.TypeCode,
		Description: model.Description,
		Location:    model.Location,
		Contact:     model.Contact,
		ImageURL:    model.ImageURL,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUserResponse преобразует пользователя в DTO для ответа.
// Онлайн выводится отдельно и передается вызывающим.
func ModelToUserResponse(model *models.User, online bool) *UserResponse {
	return &UserResponse{
		ID:          model.ID,
		Email:       model.Email,
		DisplayName: model.DisplayName,
		Contact:     model.Contact,
		PhotoURL:    model.PhotoURL,
		Role:        model.Role,
		Online:      online,
		LastSeenAt:  model.LastSeenAt,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelToPushTokenResponse преобразует токен в DTO для ответа
func ModelToPushTokenResponse(model *models.PushToken) *PushTokenResponse {
	return &PushTokenResponse{
		Token:     model.Token,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ModelToIncidentTypeResponse преобразует тип обращения в DTO для ответа
func ModelToIncidentTypeResponse(model *models.IncidentType) *IncidentTypeResponse {
	return &IncidentTypeResponse{
		ID:        model.ID,
		Code:      model.Code,
		Label:     model.Label,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToIncidentTypeResponses преобразует слайс типов в слайс DTO
func ModelsToIncidentTypeResponses(types []*models.IncidentType) []*IncidentTypeResponse {
	responses := make([]*IncidentTypeResponse, len(types))
	for i, model := range types {
		responses[i] = ModelToIncidentTypeResponse(model)
	}
	return responses
}
