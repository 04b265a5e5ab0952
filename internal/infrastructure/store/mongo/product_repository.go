package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/furnishop/storefront/internal/core/domain"
)

const productCollection = "products"

// ProductRepository persists catalog entries in MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type mongoProduct struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	Stock       int     `bson:"stock"`
	Category    string  `bson:"category"`
	Img         string  `bson:"img"`
}

func toMongoProduct(p *domain.Product) mongoProduct {
	return mongoProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.Price),
		Stock:       p.Stock,
		Category:    p.Category,
		Img:         p.Img,
	}
}

func (mp mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:          mp.ID,
		Name:        mp.Name,
		Description: mp.Description,
		Price:       domain.Amount(mp.Price),
		Stock:       mp.Stock,
		Category:    mp.Category,
		Img:         mp.Img,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoProduct
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]*domain.Product, len(docs))
	for i, mp := range docs {
		products[i] = mp.toDomain()
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := toMongoProduct(p)
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Replace(ctx context.Context, p *domain.Product) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, toMongoProduct(p))
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
