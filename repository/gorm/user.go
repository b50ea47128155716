package gorm

import (
	"context"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/motoki317/sc"
	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/event"
	"github.com/jansampark/fieldwatch/model"
	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/utils/gormutil"
	"github.com/jansampark/fieldwatch/utils/validator"
)

var _ repository.UserRepository = (*userRepository)(nil)

type userRepository struct {
	db    *gorm.DB
	hub   *hub.Hub
	users *sc.Cache[int64, *model.User]
}

func makeUserRepository(db *gorm.DB, hub *hub.Hub) *userRepository {
	r := &userRepository{db: db, hub: hub}
	r.users = sc.NewMust(r.getUser, 1*time.Hour, 1*time.Hour)
	return r
}

func (r *userRepository) getUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, &model.User{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// CreateUser implements UserRepository interface.
func (r *userRepository) CreateUser(ctx context.Context, args repository.CreateUserArgs) (*model.User, error) {
	if err := vd.ValidateStruct(&args,
		vd.Field(&args.Name, validator.UserNameRuleRequired...),
		vd.Field(&args.FullName, vd.RuneLength(0, 128)),
		vd.Field(&args.Role, validator.RoleRuleRequired...),
	); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	user := &model.User{
		Name:      args.Name,
		FullName:  args.FullName,
		Role:      args.Role,
		CreatedBy: args.CreatedBy,
		IsActive:  true,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, convertError(err)
	}

	r.hub.Publish(hub.Message{
		Name: event.UserCreated,
		Fields: hub.Fields{
			"user_id": user.ID,
			"user":    user,
		},
	})
	return user, nil
}

// GetUser implements UserRepository interface.
func (r *userRepository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if id == 0 {
		return nil, repository.ErrNotFound
	}
	return r.users.Get(ctx, id)
}

// GetUserByName implements UserRepository interface.
func (r *userRepository) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := r.db.WithContext(ctx).Where(&model.User{Name: name}).First(&user).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUsersByIDs implements UserRepository interface.
func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Order("id").
		Find(&users).
		Error
	return users, err
}

// GetActiveUserIDs implements UserRepository interface.
func (r *userRepository) GetActiveUserIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("is_active = ?", true).
		Order("id").
		Pluck("id", &ids).
		Error
	return ids, err
}

// GetActiveUserIDsCreatedBy implements UserRepository interface.
func (r *userRepository) GetActiveUserIDsCreatedBy(ctx context.Context, creatorID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("created_by = ? AND is_active = ?", creatorID, true).
		Order("id").
		Pluck("id", &ids).
		Error
	return ids, err
}

// DeactivateUser implements UserRepository interface.
func (r *userRepository) DeactivateUser(ctx context.Context, id int64) error {
	if id == 0 {
		return repository.ErrNilID
	}
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := gormutil.RecordExists(r.db.WithContext(ctx), &model.User{ID: id})
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
		return nil
	}
	r.users.Forget(id)

	r.hub.Publish(hub.Message{
		Name: event.UserDeactivated,
		Fields: hub.Fields{
			"user_id": id,
		},
	})
	return nil
}
