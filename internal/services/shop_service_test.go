package services

import (
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShopService(t *testing.T) (*ShopService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedMainStore(t, db)
	return NewShopService(db, NewCatalogService(db)), db
}

func TestShopFilterByCategoryAndPrice(t *testing.T) {
	svc, db := newShopService(t)

	group := models.Group{ID: uuid.New(), GroupName: "Men"}
	require.NoError(t, db.Create(&group).Error)
	category := models.Category{ID: uuid.New(), GroupID: group.ID, CatName: "Shirts"}
	require.NoError(t, db.Create(&category).Error)

	shirt := seedProduct(t, db, "Shirt", 1200, 0)
	require.NoError(t, db.Model(shirt).Updates(map[string]any{
		"group_id": group.ID, "category_id": category.ID,
	}).Error)
	cheapShirt := seedProduct(t, db, "Cheap Shirt", 400, 0)
	require.NoError(t, db.Model(cheapShirt).Updates(map[string]any{
		"group_id": group.ID, "category_id": category.ID,
	}).Error)
	seedProduct(t, db, "Unrelated", 800, 0)

	products, pagination, err := svc.Products(ShopFilter{CategoryID: &category.ID}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.EqualValues(t, 2, pagination.Total)

	minPrice := 1000.0
	products, _, err = svc.Products(ShopFilter{CategoryID: &category.ID, MinPrice: &minPrice}, 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Shirt", products[0].ProductName)
}

func TestShopFilterByTag(t *testing.T) {
	svc, db := newShopService(t)

	tag := models.Tag{ID: uuid.New(), Name: "summer"}
	require.NoError(t, db.Create(&tag).Error)

	tagged := seedProduct(t, db, "Tagged", 100, 0)
	require.NoError(t, db.Model(tagged).Association("Tags").Append(&tag))
	seedProduct(t, db, "Plain", 100, 0)

	products, _, err := svc.Products(ShopFilter{Tag: "summer"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tagged", products[0].ProductName)
}

func TestShopSortByPrice(t *testing.T) {
	svc, db := newShopService(t)

	seedProduct(t, db, "Mid", 200, 0)
	seedProduct(t, db, "Low", 100, 0)
	seedProduct(t, db, "High", 300, 0)

	products, _, err := svc.Products(ShopFilter{Sort: "price_asc"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Low", products[0].ProductName)
	assert.Equal(t, "High", products[2].ProductName)

	products, _, err = svc.Products(ShopFilter{Sort: "price_desc"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "High", products[0].ProductName)
}

func TestShopHidesArchivedAndUnavailable(t *testing.T) {
	svc, db := newShopService(t)

	seedProduct(t, db, "Visible", 100, 0)
	archived := seedProduct(t, db, "Archived", 100, 0)
	require.NoError(t, db.Model(archived).Update("is_archived", true).Error)
	soldOut := seedProduct(t, db, "Sold Out", 100, 0)
	require.NoError(t, db.Model(soldOut).Update("is_available", false).Error)

	products, _, err := svc.Products(ShopFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Visible", products[0].ProductName)
}

func TestFeaturedProducts(t *testing.T) {
	svc, db := newShopService(t)

	featured := seedProduct(t, db, "Featured", 100, 0)
	require.NoError(t, db.Model(featured).Update("is_featured", true).Error)
	seedProduct(t, db, "Ordinary", 100, 0)

	products, err := svc.Featured(8)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Featured", products[0].ProductName)
}

func TestLatestProductsCapped(t *testing.T) {
	svc, db := newShopService(t)

	for i := 0; i < 5; i++ {
		seedProduct(t, db, "Drop", 100, 0)
	}

	products, err := svc.Latest(3)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	// Out-of-range limits fall back to the default page size.
	products, err = svc.Latest(0)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestGroupsNestActiveCategories(t *testing.T) {
	svc, db := newShopService(t)

	group := models.Group{ID: uuid.New(), GroupName: "Women", MenuName: "women"}
	require.NoError(t, db.Create(&group).Error)
	require.NoError(t, db.Create(&models.Category{
		ID: uuid.New(), GroupID: group.ID, CatName: "Dresses",
	}).Error)
	hidden := models.Category{ID: uuid.New(), GroupID: group.ID, CatName: "Hidden"}
	require.NoError(t, db.Create(&hidden).Error)
	require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)

	groups, err := svc.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Categories, 1)
	assert.Equal(t, "Dresses", groups[0].Categories[0].CatName)

	menuGroups, err := svc.MenuGroups("women")
	require.NoError(t, err)
	assert.Len(t, menuGroups, 1)

	menuGroups, err = svc.MenuGroups("kids")
	require.NoError(t, err)
	assert.Empty(t, menuGroups)
}

func TestBrandsAndTags(t *testing.T) {
	svc, db := newShopService(t)

	require.NoError(t, db.Create(&models.Brand{ID: uuid.New(), Name: "Zephyr"}).Error)
	require.NoError(t, db.Create(&models.Brand{ID: uuid.New(), Name: "Aura"}).Error)
	require.NoError(t, db.Create(&models.Tag{ID: uuid.New(), Name: "winter"}).Error)

	brands, err := svc.Brands()
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Aura", brands[0].Name)

	tags, err := svc.Tags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
