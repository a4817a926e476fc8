package dao

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"linkup/model"
)

var ErrDuplicateEmail = errors.New("email already registered")

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// Create persists a new user. A second account on the same email surfaces as
// ErrDuplicateEmail via the unique index, whichever driver reports it.
func (dao *UserDAO) Create(user *model.User) error {
	if err := dao.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindByEmail looks a user up by login key. Returns gorm.ErrRecordNotFound
// when no account exists.
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := dao.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) FindByID(id uint64) (*model.User, error) {
	var user model.User
	if err := dao.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the provided name/bio changes and returns the fresh
// record. Nil entries in updates leave the column untouched.
func (dao *UserDAO) UpdateProfile(id uint64, updates map[string]interface{}) (*model.User, error) {
	if len(updates) > 0 {
		res := dao.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return dao.FindByID(id)
}
