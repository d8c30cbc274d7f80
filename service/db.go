package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transact runs fn in one transaction bound to ctx. Any error returned by fn
// rolls back every write made through tx.
func transact(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return asServiceError(db.WithContext(ctx).Transaction(fn), "database transaction failed")
}

// findOne loads the first row matching query into dest. It reports false
// instead of gorm.ErrRecordNotFound so missing rows are not logged as errors.
func findOne(tx *gorm.DB, dest interface{}, query interface{}, args ...interface{}) (bool, error) {
	res := tx.Where(query, args...).Limit(1).Find(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// lockOne is findOne with SELECT ... FOR UPDATE.
func lockOne(tx *gorm.DB, dest interface{}, query interface{}, args ...interface{}) (bool, error) {
	return findOne(tx.Clauses(clause.Locking{Strength: "UPDATE"}), dest, query, args...)
}

func exists(tx *gorm.DB, model interface{}, query interface{}, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
