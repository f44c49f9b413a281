package services

import (
	"testing"

	"github.com/finesse-lifestyle/storefront-api/internal/dto"
	"github.com/finesse-lifestyle/storefront-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSettingsSingleton(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	// Nothing seeded yet: empty object, not an error.
	data, err := svc.Settings()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	require.NoError(t, db.Create(&models.Setting{
		ID:   uuid.New(),
		Data: datatypes.JSON(`{"support_phone":"09611"}`),
	}).Error)

	data, err = svc.Settings()
	require.NoError(t, err)
	assert.JSONEq(t, `{"support_phone":"09611"}`, string(data))
}

func TestPageByRouteName(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.Page{
		ID:        uuid.New(),
		RouteName: "privacy-policy",
		Title:     "Privacy Policy",
		Body:      "We keep your data safe.",
	}).Error)
	retired := models.Page{ID: uuid.New(), RouteName: "retired", Title: "Old"}
	require.NoError(t, db.Create(&retired).Error)
	require.NoError(t, db.Model(&retired).Update("is_active", false).Error)

	page, err := svc.Page("privacy-policy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", page.Title)

	_, err = svc.Page("retired")
	assert.ErrorIs(t, err, ErrPageNotFound)
	_, err = svc.Page("missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestSlidersFilteredByKind(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	require.NoError(t, db.Create(&models.Slider{
		ID: uuid.New(), Kind: models.SliderKindFront, ImageURL: "a.jpg", SortOrder: 2,
	}).Error)
	require.NoError(t, db.Create(&models.Slider{
		ID: uuid.New(), Kind: models.SliderKindFront, ImageURL: "b.jpg", SortOrder: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Slider{
		ID: uuid.New(), Kind: models.SliderKindPromotional, ImageURL: "promo.jpg",
	}).Error)

	front, err := svc.Sliders(models.SliderKindFront)
	require.NoError(t, err)
	require.Len(t, front, 2)
	assert.Equal(t, "b.jpg", front[0].ImageURL) // sort order wins

	promo, err := svc.Sliders(models.SliderKindPromotional)
	require.NoError(t, err)
	assert.Len(t, promo, 1)
}

func TestContactMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)

	err := svc.StoreContactMessage(&dto.ContactUsRequest{Name: "X"})
	assert.Error(t, err)

	require.NoError(t, svc.StoreContactMessage(&dto.ContactUsRequest{
		Name:    "Karim",
		Message: "Where is my order?",
	}))

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDamageReportsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db)
	userID := uuid.New()

	_, err := svc.StoreReport(userID, &dto.CreateReportRequest{
		OrderNo: "AB12CD0001",
		Subject: "Broken seal",
		Details: "The package arrived damaged.",
	})
	require.NoError(t, err)

	mine, pagination, err := svc.Reports(userID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.EqualValues(t, 1, pagination.Total)

	others, _, err := svc.Reports(uuid.New(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, others)
}
