package mongorepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.Email = strings.ToLower(user.Email)

	doc := toUserDoc(user)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.UserExists()
		}
		return repository.DBError("Failed to create user", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.UserNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch user", err)
	}
	u := doc.toModel()
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.UserNotFound()
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, repository.DBError("Failed to fetch users", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, repository.DBError("Failed to fetch users", err)
	}
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

func (r *UserRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{"role": constants.RoleAdmin})
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	oid, ok := objectID(user.ID)
	if !ok {
		return repository.UserNotFound()
	}
	user.Email = strings.ToLower(user.Email)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"email":          user.Email,
		"firstName":      user.FirstName,
		"lastName":       user.LastName,
		"phoneNumber":    user.PhoneNumber,
		"nationality":    user.Nationality,
		"profilePicture": user.ProfilePicture,
		"role":           user.Role,
		"isActive":       user.IsActive,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.UserExists()
		}
		return repository.DBError("Failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return repository.UserNotFound()
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.UserNotFound()
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		return repository.DBError("Failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return repository.UserNotFound()
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.UserNotFound()
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DBError("Failed to delete user", err)
	}
	if res.DeletedCount == 0 {
		return repository.UserNotFound()
	}
	return nil
}
