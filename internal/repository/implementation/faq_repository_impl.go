package implementation

import (
	"context"
	"errors"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/mapper"
	"faq-chat-be/internal/model"
	"faq-chat-be/internal/repository/contract"
	"faq-chat-be/internal/repository/scope"
	"faq-chat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaqEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewFaqEntryRepository(db *gorm.DB) contract.FaqEntryRepository {
	return &FaqEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FaqEntryRepositoryImpl) Create(ctx context.Context, entry *entity.FaqEntry) error {
	m := r.mapper.FaqEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.FaqEntryToEntity(m)
	return nil
}

func (r *FaqEntryRepositoryImpl) CreateBatch(ctx context.Context, entries []*entity.FaqEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]*model.FaqEntry, len(entries))
	for i, e := range entries {
		models[i] = r.mapper.FaqEntryToModel(e)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}
	for i, m := range models {
		*entries[i] = *r.mapper.FaqEntryToEntity(m)
	}
	return nil
}

func (r *FaqEntryRepositoryImpl) Update(ctx context.Context, entry *entity.FaqEntry) error {
	m := r.mapper.FaqEntryToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.FaqEntryToEntity(m)
	return nil
}

func (r *FaqEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FaqEntry{}, "id = ?", id).Error
}

func (r *FaqEntryRepositoryImpl) DeleteAllUnscoped(ctx context.Context) error {
	return r.db.WithContext(ctx).Scopes(scope.WithSoftDelete).Where("1 = 1").Delete(&model.FaqEntry{}).Error
}

func (r *FaqEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	var m model.FaqEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FaqEntryToEntity(&m), nil
}

func (r *FaqEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error) {
	var models []*model.FaqEntry
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FaqEntriesToEntities(models), nil
}

func (r *FaqEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.FaqEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type KnowledgeBaseSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewKnowledgeBaseSettingRepository(db *gorm.DB) contract.KnowledgeBaseSettingRepository {
	return &KnowledgeBaseSettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func (r *KnowledgeBaseSettingRepositoryImpl) FindLatest(ctx context.Context) (*entity.KnowledgeBaseSetting, error) {
	var m model.KnowledgeBaseSetting
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByUpdatedDesc).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingToEntity(&m), nil
}

func (r *KnowledgeBaseSettingRepositoryImpl) Save(ctx context.Context, setting *entity.KnowledgeBaseSetting) error {
	m := r.mapper.SettingToModel(setting)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*setting = *r.mapper.SettingToEntity(m)
	return nil
}
