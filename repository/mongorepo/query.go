package mongorepo

import (
	"regexp"

	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hotelFilter translates q into a find filter. Destination input is
// matched literally.
func hotelFilter(q repository.HotelQuery) bson.M {
	filter := bson.M{}

	if q.Destination != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Destination), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"city": pattern},
			bson.M{"country": pattern},
		}
	}
	if q.MinAdults != nil {
		filter["adultCount"] = bson.M{"$gte": *q.MinAdults}
	}
	if q.MinChildren != nil {
		filter["childCount"] = bson.M{"$gte": *q.MinChildren}
	}
	if len(q.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": q.Facilities}
	}
	if len(q.Types) > 0 {
		filter["type"] = bson.M{"$in": q.Types}
	}
	if len(q.Stars) > 0 {
		filter["starRating"] = bson.M{"$in": q.Stars}
	}
	if q.MaxPrice != nil {
		filter["pricePerNight"] = bson.M{"$lte": *q.MaxPrice}
	}
	if q.Status != "" {
		filter["status"] = string(q.Status)
	}
	return filter
}

// hotelSort always ends on _id so that pages never overlap
func hotelSort(sort repository.HotelSort) bson.D {
	switch sort {
	case repository.SortStarRating:
		return bson.D{{Key: "starRating", Value: -1}, {Key: "_id", Value: 1}}
	case repository.SortPriceAsc:
		return bson.D{{Key: "pricePerNight", Value: 1}, {Key: "_id", Value: 1}}
	case repository.SortPriceDesc:
		return bson.D{{Key: "pricePerNight", Value: -1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
	}
}

func hotelFindOptions(q repository.HotelQuery) *options.FindOptions {
	opts := options.Find().SetSort(hotelSort(q.Sort))
	if q.Skip > 0 {
		opts.SetSkip(int64(q.Skip))
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}
