package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jansampark/fieldwatch/repository"
	"github.com/jansampark/fieldwatch/utils/gormutil"
)

func convertError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), gormutil.IsMySQLDuplicatedRecordErr(err):
		return repository.ErrAlreadyExists
	default:
		return err
	}
}
