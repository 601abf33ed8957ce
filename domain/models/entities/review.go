package entities

import "time"

type Review struct {
	ReviewId  uint64       `bson:"reviewId"`
	ProductId uint64       `bson:"productId"`
	Rating    int32        `bson:"rating"`
	Comment   string       `bson:"comment"`
	Reviewer  ReviewerInfo `bson:"reviewer"`
	CreatedAt time.Time    `bson:"createdAt"`
}

type ReviewerInfo struct {
	UserId    uint64 `bson:"userId"`
	FullName  string `bson:"fullName"`
	AvatarUrl string `bson:"avatarUrl"`
}
