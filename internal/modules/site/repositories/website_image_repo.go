package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soundzyworld/swg-site-be/internal/modules/site/models"
)

type WebsiteImageRepo interface {
	GetByKey(ctx context.Context, key string) (*models.WebsiteImage, error)
	List(ctx context.Context, page string) ([]models.WebsiteImage, error)
	// InsertMissing inserts rows whose key does not exist yet and returns the keys it created
	InsertMissing(ctx context.Context, images []models.WebsiteImage) ([]string, error)
	UpdateURL(ctx context.Context, key, url string, description *string) (*models.WebsiteImage, error)
	Delete(ctx context.Context, key string) error
}

type websiteImageRepo struct {
	db *gorm.DB
}

func NewWebsiteImageRepo(db *gorm.DB) WebsiteImageRepo {
	return &websiteImageRepo{db: db}
}

func (r *websiteImageRepo) GetByKey(ctx context.Context, key string) (*models.WebsiteImage, error) {
	var img models.WebsiteImage
	if err := r.db.WithContext(ctx).First(&img, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *websiteImageRepo) List(ctx context.Context, page string) ([]models.WebsiteImage, error) {
	query := r.db.WithContext(ctx).Order("page").Order("section")
	if page != "" {
		query = query.Where("page = ?", page)
	}
	var list []models.WebsiteImage
	err := query.Find(&list).Error
	return list, err
}

func (r *websiteImageRepo) InsertMissing(ctx context.Context, images []models.WebsiteImage) ([]string, error) {
	var created []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range images {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoNothing: true,
			}).Create(&images[i])
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				created = append(created, images[i].Key)
			}
		}
		return nil
	})
	return created, err
}

func (r *websiteImageRepo) UpdateURL(ctx context.Context, key, url string, description *string) (*models.WebsiteImage, error) {
	updates := map[string]interface{}{"url": url}
	if description != nil {
		updates["description"] = *description
	}

	res := r.db.WithContext(ctx).Model(&models.WebsiteImage{}).Where("key = ?", key).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByKey(ctx, key)
}

func (r *websiteImageRepo) Delete(ctx context.Context, key string) error {
	res := r.db.WithContext(ctx).Delete(&models.WebsiteImage{}, "key = ?", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
