package review

import "time"

type ReviewDB struct {
	ID                  string
	OrderID             string
	ReviewerID          string
	RevieweeID          string
	ReviewerRole        string
	OverallRating       int
	CommunicationRating int
	TimelinessRating    int
	Comment             *string
	CreatedAt           time.Time
}
