package review

import "marketplace/internal/entities"

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}
	return &entities.Review{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		ReviewerID:          r.ReviewerID,
		RevieweeID:          r.RevieweeID,
		ReviewerRole:        entities.ActorRole(r.ReviewerRole),
		OverallRating:       r.OverallRating,
		CommunicationRating: r.CommunicationRating,
		TimelinessRating:    r.TimelinessRating,
		Comment:             r.Comment,
		CreatedAt:           r.CreatedAt.UTC(),
	}
}

func FromDomain(r *entities.Review) *ReviewDB {
	if r == nil {
		return nil
	}
	return &ReviewDB{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		ReviewerID:          r.ReviewerID,
		RevieweeID:          r.RevieweeID,
		ReviewerRole:        r.ReviewerRole.String(),
		OverallRating:       r.OverallRating,
		CommunicationRating: r.CommunicationRating,
		TimelinessRating:    r.TimelinessRating,
		Comment:             r.Comment,
		CreatedAt:           r.CreatedAt,
	}
}
