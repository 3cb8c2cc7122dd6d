package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const hotelsCollection = "hotels"

type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{coll: db.Collection(hotelsCollection)}
}

var _ repository.HotelRepository = (*HotelRepository)(nil)

func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = time.Now().UTC()
	}
	doc := toHotelDoc(hotel)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return repository.DBError("Failed to create hotel", err)
	}
	hotel.ID = doc.ID.Hex()
	return nil
}

func (r *HotelRepository) findOne(ctx context.Context, filter bson.M) (*models.Hotel, error) {
	var doc hotelDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.HotelNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch hotel", err)
	}
	h := doc.toModel()
	return &h, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*models.Hotel, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.HotelNotFound()
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *HotelRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Hotel, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.HotelNotFound()
	}
	return r.findOne(ctx, bson.M{"_id": oid, "userId": ownerID})
}

func (r *HotelRepository) Update(ctx context.Context, hotel *models.Hotel) error {
	oid, ok := objectID(hotel.ID)
	if !ok {
		return repository.HotelNotFound()
	}

	doc := toHotelDoc(hotel)
	update := bson.M{"$set": bson.M{
		"name":          doc.Name,
		"city":          doc.City,
		"country":       doc.Country,
		"description":   doc.Description,
		"type":          doc.Type,
		"adultCount":    doc.AdultCount,
		"childCount":    doc.ChildCount,
		"facilities":    doc.Facilities,
		"pricePerNight": doc.PricePerNight,
		"starRating":    doc.StarRating,
		"imageUrls":     doc.ImageURLs,
		"location":      doc.Location,
		"lastUpdated":   doc.LastUpdated,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return repository.DBError("Failed to update hotel", err)
	}
	if res.MatchedCount == 0 {
		return repository.HotelNotFound()
	}
	return nil
}

func statusUpdate(status models.HotelStatus) bson.M {
	return bson.M{"$set": bson.M{"status": string(status), "lastUpdated": time.Now().UTC()}}
}

func (r *HotelRepository) SetStatus(ctx context.Context, id string, status models.HotelStatus) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.HotelNotFound()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, statusUpdate(status))
	if err != nil {
		return repository.DBError("Failed to update hotel status", err)
	}
	if res.MatchedCount == 0 {
		return repository.HotelNotFound()
	}
	return nil
}

func (r *HotelRepository) TransitionStatus(ctx context.Context, id string, from, to models.HotelStatus) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.HotelNotFound()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "status": string(from)}, statusUpdate(to))
	if err != nil {
		return repository.DBError("Failed to update hotel status", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DBError("Failed to update hotel status", err)
	}
	if count == 0 {
		return repository.HotelNotFound()
	}
	return repository.StatusConflict(from)
}

func (r *HotelRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.HotelNotFound()
	}

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		filter["userId"] = ownerID
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return repository.DBError("Failed to delete hotel", err)
	}
	if res.DeletedCount == 0 {
		return repository.HotelNotFound()
	}
	return nil
}

func (r *HotelRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Hotel, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, repository.DBError("Failed to fetch hotels", err)
	}
	defer cur.Close(ctx)

	var docs []hotelDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, repository.DBError("Failed to fetch hotels", err)
	}
	hotels := make([]models.Hotel, 0, len(docs))
	for _, d := range docs {
		hotels = append(hotels, d.toModel())
	}
	return hotels, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}

func (r *HotelRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{"userId": ownerID}, newestFirst())
}

func (r *HotelRepository) ListByStatus(ctx context.Context, status models.HotelStatus) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{"status": string(status)}, newestFirst())
}

func (r *HotelRepository) ListAll(ctx context.Context) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}}))
}

func (r *HotelRepository) ListBookedBy(ctx context.Context, userID string) ([]models.Hotel, error) {
	return r.find(ctx, bson.M{"bookings.userId": userID}, newestFirst())
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repository.DBError("Failed to count hotels", err)
	}
	return count, nil
}

func (r *HotelRepository) Search(ctx context.Context, q repository.HotelQuery) ([]models.Hotel, int64, error) {
	filter := hotelFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, repository.DBError("Failed to search hotels", err)
	}
	hotels, err := r.find(ctx, filter, hotelFindOptions(q))
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

func (r *HotelRepository) AppendBooking(ctx context.Context, hotelID string, booking models.Booking) error {
	oid, ok := objectID(hotelID)
	if !ok {
		return repository.HotelNotFound()
	}
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	filter := bson.M{"_id": oid}
	if booking.PaymentIntentID != "" {
		filter["bookings.paymentIntentId"] = bson.M{"$ne": booking.PaymentIntentID}
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"bookings": toBookingDoc(booking)}})
	if err != nil {
		return repository.DBError("Failed to add booking", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	if booking.PaymentIntentID == "" {
		return repository.HotelNotFound()
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DBError("Failed to add booking", err)
	}
	if count == 0 {
		return repository.HotelNotFound()
	}
	return repository.BookingExists()
}

func (r *HotelRepository) Destinations(ctx context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, field := range []string{"city", "country"} {
		values, err := r.coll.Distinct(ctx, field, bson.M{})
		if err != nil {
			return nil, repository.DBError("Failed to list destinations", err)
		}
		for _, v := range values {
			if s, ok := v.(string); ok && s != "" && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out, nil
}
