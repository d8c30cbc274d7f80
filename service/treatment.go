package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"gorm.io/gorm"
)

type TreatmentInput struct {
	Name       string
	NepaliName string
	Type       string
	Price      float64
}

func (in *TreatmentInput) normalize() error {
	in.Name = util.NormalizeName(in.Name)
	in.NepaliName = strings.TrimSpace(in.NepaliName)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if in.Name == "" || in.NepaliName == "" {
		return InvalidInput("treatment name and nepali name are required")
	}
	if !model.TreatmentType(in.Type).Valid() {
		return InvalidInput("treatment type must be one of general, consulting, surgical or therapy")
	}
	if in.Price < 0 {
		return InvalidInput("price must not be negative")
	}
	return nil
}

func (in TreatmentInput) apply(t *model.Treatment) {
	t.Name = in.Name
	t.NepaliName = in.NepaliName
	t.Type = model.TreatmentType(in.Type)
	t.Price = in.Price
}

func checkTreatmentUnique(tx *gorm.DB, in TreatmentInput, excludeID uint) error {
	dup, err := exists(tx, &model.Treatment{}, "(name = ? OR nepali_name = ?) AND id <> ?", in.Name, in.NepaliName, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("treatment %q already exists", in.Name)
	}
	return nil
}

func CreateTreatment(ctx context.Context, db *gorm.DB, in TreatmentInput) (*model.Treatment, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	var t model.Treatment
	err := transact(ctx, db, func(tx *gorm.DB) error {
		if err := checkTreatmentUnique(tx, in, 0); err != nil {
			return err
		}
		in.apply(&t)
		if err := tx.Create(&t).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("treatment %q already exists", in.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTreatments returns the catalog, optionally filtered by type.
func ListTreatments(ctx context.Context, db *gorm.DB, treatmentType string) ([]model.Treatment, error) {
	q := db.WithContext(ctx)
	if treatmentType != "" {
		q = q.Where("type = ?", strings.ToLower(treatmentType))
	}
	var out []model.Treatment
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, Internal("failed to list treatments", err)
	}
	return out, nil
}

func GetTreatment(ctx context.Context, db *gorm.DB, id uint) (*model.Treatment, error) {
	var t model.Treatment
	found, err := findOne(db.WithContext(ctx), &t, "id = ?", id)
	if err != nil {
		return nil, Internal("failed to load treatment", err)
	}
	if !found {
		return nil, NotFound("unable to find the treatment")
	}
	return &t, nil
}

func UpdateTreatment(ctx context.Context, db *gorm.DB, id uint, in TreatmentInput) (*model.Treatment, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	var t model.Treatment
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &t, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the treatment")
		}
		if err := checkTreatmentUnique(tx, in, t.ID); err != nil {
			return err
		}
		in.apply(&t)
		if err := tx.Save(&t).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("treatment %q already exists", in.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTreatment removes a catalog entry and every edge pointing at it.
func DeleteTreatment(ctx context.Context, db *gorm.DB, id uint) error {
	return transact(ctx, db, func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Treatment{}, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the treatment")
		}
		if err := tx.Where("treatment_id = ?", id).Delete(&model.HospitalTreatment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("treatment_id = ?", id).Delete(&model.DepartmentTreatment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Treatment{}, id).Error
	})
}
