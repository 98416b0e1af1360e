package repository

import (
	"context"
	"time"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// blogRepo is the concrete MongoDB implementation of BlogRepository
type blogRepo struct {
	db *database.DB
}

// NewBlogRepo creates a new blog repository
func NewBlogRepo(db *database.DB) BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) collection() *mongo.Collection {
	return r.db.Collection(database.BlogCollection)
}

// Create inserts a new blog post. The slug unique index turns concurrent
// duplicate creates into ErrDuplicateSlug instead of a silent overwrite.
func (r *blogRepo) Create(ctx context.Context, blog *models.Blog) error {
	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, blog)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	return err
}

// GetBySlug retrieves a blog post by slug, nil when absent
func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetAll retrieves every blog post, newest first
func (r *blogRepo) GetAll(ctx context.Context) ([]*models.Blog, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// GetPublished retrieves published posts only. Documents predating the
// published field are treated as published.
func (r *blogRepo) GetPublished(ctx context.Context) ([]*models.Blog, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"published": true},
		bson.M{"published": bson.M{"$exists": false}},
	}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// GetScheduled retrieves unpublished posts carrying a scheduled date
func (r *blogRepo) GetScheduled(ctx context.Context) ([]*models.Blog, error) {
	filter := bson.M{
		"published":     false,
		"scheduledDate": bson.M{"$exists": true},
	}
	return r.find(ctx, filter, options.Find())
}

func (r *blogRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Blog, error) {
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update applies the mutable content fields to a post, returning the
// updated document or nil when the slug is unknown
func (r *blogRepo) Update(ctx context.Context, slug string, update *BlogUpdate) (*models.Blog, error) {
	set := bson.M{
		"title":      update.Title,
		"excerpt":    update.Excerpt,
		"content":    update.Content,
		"author":     update.Author,
		"category":   update.Category,
		"categories": update.Categories,
		"updatedAt":  time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err := r.collection().
		FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).
		Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// MarkPublished flips a post to published and refreshes its display date.
// Last write wins when two reconciliations race; published stays true
// either way.
func (r *blogRepo) MarkPublished(ctx context.Context, slug string, date string) error {
	set := bson.M{
		"published": true,
		"date":      date,
		"updatedAt": time.Now(),
	}
	_, err := r.collection().UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": set})
	return err
}

// Delete removes a post by slug and returns the deleted count
func (r *blogRepo) Delete(ctx context.Context, slug string) (int64, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// BackfillPublished adds published:true to legacy documents that predate
// the field, returning how many were modified
func (r *blogRepo) BackfillPublished(ctx context.Context) (int64, error) {
	filter := bson.M{"published": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"published": true, "updatedAt": time.Now()}}

	res, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Count returns the total number of blog posts
func (r *blogRepo) Count(ctx context.Context) (int, error) {
	n, err := r.collection().CountDocuments(ctx, bson.M{})
	return int(n), err
}
