package entities

import "time"

type Review struct {
	ID                  string
	OrderID             string
	ReviewerID          string
	RevieweeID          string
	ReviewerRole        ActorRole
	OverallRating       int
	CommunicationRating int
	TimelinessRating    int
	Comment             *string
	CreatedAt           time.Time
}

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

type ReviewCreate struct {
	OrderID             string
	RevieweeID          string
	OverallRating       int
	CommunicationRating int
	TimelinessRating    int
	Comment             *string
}
