package services

import (
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDetailsComputedFields(t *testing.T) {
	db := newTestDB(t)
	storeID := seedMainStore(t, db)

	brand := models.Brand{ID: uuid.New(), Name: "Finesse"}
	require.NoError(t, db.Create(&brand).Error)

	product := seedProduct(t, db, "Polo", 999, 15)
	require.NoError(t, db.Model(product).Update("brand_id", brand.ID).Error)
	seedPurchase(t, db, storeID, product.ID, uuid.Nil, 4)

	svc := NewCatalogService(db)
	detail, err := svc.Details(product.ID, uuid.Nil)
	require.NoError(t, err)

	assert.Equal(t, "Polo", detail.ProductName)
	assert.Equal(t, "Finesse", detail.Brand)
	assert.Equal(t, 849.0, detail.DiscountedPrice) // 999 − ceil(149.85)
	assert.Equal(t, 4, detail.Stock)
	assert.False(t, detail.IsWishlist)
}

func TestProductDetailsWishlistFlag(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Saved", 100, 0)
	userID := uuid.New()

	require.NoError(t, db.Create(&models.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
	}).Error)

	svc := NewCatalogService(db)
	detail, err := svc.Details(product.ID, userID)
	require.NoError(t, err)
	assert.True(t, detail.IsWishlist)

	detail, err = svc.Details(product.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, detail.IsWishlist)
}

func TestProductDetailsHidesArchived(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Hidden", 100, 0)
	require.NoError(t, db.Model(product).Update("is_archived", true).Error)

	svc := NewCatalogService(db)
	_, err := svc.Details(product.ID, uuid.Nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRelatedSameCategoryExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)

	category := models.Category{ID: uuid.New(), GroupID: uuid.New(), CatName: "Shirts"}
	require.NoError(t, db.Create(&category).Error)

	subject := seedProduct(t, db, "Subject", 100, 0)
	sibling := seedProduct(t, db, "Sibling", 120, 0)
	outsider := seedProduct(t, db, "Outsider", 130, 0)
	require.NoError(t, db.Model(subject).Update("category_id", category.ID).Error)
	require.NoError(t, db.Model(sibling).Update("category_id", category.ID).Error)

	svc := NewCatalogService(db)
	related, err := svc.Related(subject.ID, 8)
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.Equal(t, sibling.ID, related[0].ID)
	assert.NotEqual(t, outsider.ID, related[0].ID)
}

func TestCreateReviewRules(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Rated", 100, 0)
	user := seedUser(t, db, "01712345678", true)
	svc := NewCatalogService(db)

	_, err := svc.CreateReview(user.ID, &dto.CreateReviewRequest{ProductID: product.ID, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.CreateReview(user.ID, &dto.CreateReviewRequest{ProductID: product.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.CreateReview(user.ID, &dto.CreateReviewRequest{ProductID: uuid.New(), Rating: 4})
	assert.ErrorIs(t, err, ErrProductNotFound)

	review, err := svc.CreateReview(user.ID, &dto.CreateReviewRequest{
		ProductID: product.ID, Rating: 4, Comment: "Solid",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	_, err = svc.CreateReview(user.ID, &dto.CreateReviewRequest{ProductID: product.ID, Rating: 5})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestReviewsAggregate(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	product := seedProduct(t, db, "Popular", 100, 0)
	alice := seedUser(t, db, "01712345678", true)
	bob := seedUser(t, db, "01812345678", true)
	svc := NewCatalogService(db)

	_, err := svc.CreateReview(alice.ID, &dto.CreateReviewRequest{ProductID: product.ID, Rating: 5})
	require.NoError(t, err)
	_, err = svc.CreateReview(bob.ID, &dto.CreateReviewRequest{ProductID: product.ID, Rating: 2})
	require.NoError(t, err)

	entries, rating, pagination, err := svc.Reviews(product.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.InDelta(t, 3.5, rating, 0.001)
	assert.EqualValues(t, 2, pagination.Total)
}

func TestSearchMatchesNameAndKeywords(t *testing.T) {
	db := newTestDB(t)
	seedMainStore(t, db)
	shirt := seedProduct(t, db, "Linen Shirt", 100, 0)
	trouser := seedProduct(t, db, "Trouser", 100, 0)
	require.NoError(t, db.Model(trouser).Update("keywords", "formal shirt pants").Error)
	seedProduct(t, db, "Socks", 20, 0)

	svc := NewCatalogService(db)
	results, pagination, err := svc.Search("shirt", 1, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 2, pagination.Total)
	ids := []uuid.UUID{results[0].ID, results[1].ID}
	assert.Contains(t, ids, shirt.ID)
	assert.Contains(t, ids, trouser.ID)
}
