package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionsCollection = "transactions"

type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{coll: db.Collection(transactionsCollection)}
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	doc := toTransactionDoc(tx)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return repository.DBError("Failed to create transaction", err)
	}
	tx.ID = doc.ID.Hex()
	return nil
}

func (r *TransactionRepository) find(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, repository.DBError("Failed to fetch transactions", err)
	}
	defer cur.Close(ctx)

	var docs []transactionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, repository.DBError("Failed to fetch transactions", err)
	}
	out := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{})
}

func (r *TransactionRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{"createdAt": bson.M{"$gte": from.UTC(), "$lt": to.UTC()}})
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.TransactionNotFound()
	}

	var doc transactionDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.TransactionNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch transaction", err)
	}
	t := doc.toModel()
	return &t, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.TransactionNotFound()
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DBError("Failed to delete transaction", err)
	}
	if res.DeletedCount == 0 {
		return repository.TransactionNotFound()
	}
	return nil
}
