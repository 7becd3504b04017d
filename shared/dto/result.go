package dto

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult is the acknowledgment of a single-document insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult is the acknowledgment of a single-document update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult is the acknowledgment of a single-document delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func (r *InsertResult) FromMongo(res *mongo.InsertOneResult) {
	if res == nil {
		return
	}

	r.Acknowledged = true
	r.InsertedID = res.InsertedID
}

func (r *UpdateResult) FromMongo(res *mongo.UpdateResult) {
	if res == nil {
		return
	}

	r.Acknowledged = true
	r.MatchedCount = res.MatchedCount
	r.ModifiedCount = res.ModifiedCount
	r.UpsertedCount = res.UpsertedCount
	r.UpsertedID = res.UpsertedID
}

func (r *DeleteResult) FromMongo(res *mongo.DeleteResult) {
	if res == nil {
		return
	}

	r.Acknowledged = true
	r.DeletedCount = res.DeletedCount
}
