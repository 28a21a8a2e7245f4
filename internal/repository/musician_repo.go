package repository

import (
	"context"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
)

const (
	SortNewest = "newest"
	SortRating = "rating"
	SortName   = "name"
)

type MusicianFilter struct {
	Query      string
	Genre      string
	Instrument string
	Location   string
	Sort       string
	Limit      int
	Offset     int
}

type MusicianRepository interface {
	Create(ctx context.Context, tx *gorm.DB, musician *models.Musician) error
	Update(ctx context.Context, musician *models.Musician) error
	FindByID(ctx context.Context, id uint) (*models.Musician, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Musician, error)
	FindWithRating(ctx context.Context, id uint) (*models.MusicianWithRating, error)
	Search(ctx context.Context, filter MusicianFilter) ([]models.MusicianWithRating, int64, error)
	Count(ctx context.Context) (int64, error)
}

type musicianRepository struct {
	db *gorm.DB
}

func NewMusicianRepository(db *gorm.DB) MusicianRepository {
	return &musicianRepository{db: db}
}

func (r *musicianRepository) Create(ctx context.Context, tx *gorm.DB, musician *models.Musician) error {
	return conn(r.db, tx).WithContext(ctx).Create(musician).Error
}

func (r *musicianRepository) Update(ctx context.Context, musician *models.Musician) error {
	return r.db.WithContext(ctx).Omit("User").Save(musician).Error
}

func (r *musicianRepository) FindByID(ctx context.Context, id uint) (*models.Musician, error) {
	var musician models.Musician
	if err := r.db.WithContext(ctx).First(&musician, id).Error; err != nil {
		return nil, err
	}
	return &musician, nil
}

func (r *musicianRepository) FindByUserID(ctx context.Context, userID uint) (*models.Musician, error) {
	var musician models.Musician
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&musician).Error; err != nil {
		return nil, err
	}
	return &musician, nil
}

func (r *musicianRepository) withRating(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Musician{}).
		Select("musicians.*, COALESCE(AVG(reviews.rating), 0) AS average_rating, COUNT(reviews.id) AS review_count").
		Joins("LEFT JOIN reviews ON reviews.musician_id = musicians.id").
		Group("musicians.id")
}

func (r *musicianRepository) FindWithRating(ctx context.Context, id uint) (*models.MusicianWithRating, error) {
	var rows []models.MusicianWithRating
	if err := r.withRating(ctx).Where("musicians.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func applyMusicianFilter(q *gorm.DB, f MusicianFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Query); s != "" {
		like := containsPattern(s)
		q = q.Where(`(musicians.stage_name ILIKE ? ESCAPE '\' OR musicians.bio ILIKE ? ESCAPE '\')`, like, like)
	}
	// list columns are stored lower-cased, see service.normalizeTags
	if g := strings.ToLower(strings.TrimSpace(f.Genre)); g != "" {
		q = q.Where("musicians.genres @> ARRAY[?]::text[]", g)
	}
	if i := strings.ToLower(strings.TrimSpace(f.Instrument)); i != "" {
		q = q.Where("musicians.instruments @> ARRAY[?]::text[]", i)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		q = q.Where(`musicians.location ILIKE ? ESCAPE '\'`, containsPattern(l))
	}
	return q
}

func (r *musicianRepository) Search(ctx context.Context, f MusicianFilter) ([]models.MusicianWithRating, int64, error) {
	var total int64
	if err := applyMusicianFilter(r.db.WithContext(ctx).Model(&models.Musician{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := applyMusicianFilter(r.withRating(ctx), f)
	switch f.Sort {
	case SortRating:
		q = q.Order("average_rating DESC, review_count DESC, musicians.id DESC")
	case SortName:
		q = q.Order("musicians.stage_name ASC, musicians.id ASC")
	default:
		q = q.Order("musicians.created_at DESC, musicians.id DESC")
	}

	var rows []models.MusicianWithRating
	if err := q.Limit(f.Limit).Offset(f.Offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *musicianRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Musician{}).Count(&count).Error
	return count, err
}
