package booking

import (
	"context"

	"bookingsite/models"

	"go.uber.org/zap"
)

// GetActivities returns every activity keyed by id. Nothing is cached.
func (s *BookingStore) GetActivities(ctx context.Context) models.Result[models.ActivitiesPayload] {
	activities, err := s.Activities.GetAll(ctx)
	if err != nil {
		s.log().Error("GetActivities: failed to fetch activities", zap.Error(err))
		return fail[models.ActivitiesPayload](err)
	}
	byID := make(map[string]map[string]any, len(activities))
	for _, a := range activities {
		byID[a.ID] = a.Attributes
	}
	return models.Ok(models.ActivitiesPayload{Activities: byID})
}
