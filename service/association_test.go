package service

import (
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func hospitalDepartmentIDs(t *testing.T, db *gorm.DB, hospitalID uint) []uint {
	t.Helper()
	ids := []uint{}
	require.NoError(t, db.Model(&model.HospitalDepartment{}).Where("hospital_id = ?", hospitalID).Order("department_id").Pluck("department_id", &ids).Error)
	return ids
}

func hospitalTreatmentIDs(t *testing.T, db *gorm.DB, hospitalID uint) []uint {
	t.Helper()
	ids := []uint{}
	require.NoError(t, db.Model(&model.HospitalTreatment{}).Where("hospital_id = ?", hospitalID).Order("treatment_id").Pluck("treatment_id", &ids).Error)
	return ids
}

func TestSetAssociation_Departments(t *testing.T) {
	db := setupTestDB(t)
	h, d := seedHospital(t, db, 1)
	_, d2 := seedHospital(t, db, 2)

	// Unknown ids are dropped silently.
	require.NoError(t, SetAssociation(ctx, db, staffOf(1), AssocDepartments, h.ID, []uint{d2.ID, d.ID, 404}))
	assert.Equal(t, []uint{d.ID, d2.ID}, hospitalDepartmentIDs(t, db, h.ID))

	// Departments may be cleared.
	require.NoError(t, SetAssociation(ctx, db, staffOf(1), AssocDepartments, h.ID, []uint{404}))
	assert.Empty(t, hospitalDepartmentIDs(t, db, h.ID))

	require.NoError(t, SetAssociation(ctx, db, staffOf(1), AssocDepartments, h.ID, []uint{}))
	assert.Empty(t, hospitalDepartmentIDs(t, db, h.ID))
}

func TestSetAssociation_TreatmentsMustMatch(t *testing.T) {
	db := setupTestDB(t)
	h, _ := seedHospital(t, db, 1)
	echo := seedTreatment(t, db, "Echocardiography")
	ecg := seedTreatment(t, db, "ECG")

	require.NoError(t, SetAssociation(ctx, db, superAdmin, AssocHospitalTreatments, h.ID, []uint{ecg.ID, echo.ID}))
	assert.Equal(t, []uint{echo.ID, ecg.ID}, hospitalTreatmentIDs(t, db, h.ID))

	err := SetAssociation(ctx, db, superAdmin, AssocHospitalTreatments, h.ID, []uint{404})
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "treatments couldn't be found", err.Error())
	assert.Equal(t, []uint{echo.ID, ecg.ID}, hospitalTreatmentIDs(t, db, h.ID))

	err = SetAssociation(ctx, db, superAdmin, AssocHospitalTreatments, h.ID, []uint{})
	requireKind(t, err, KindNotFound)
	assert.Len(t, hospitalTreatmentIDs(t, db, h.ID), 2)
}

func TestSetAssociation_DepartmentTreatments(t *testing.T) {
	db := setupTestDB(t)
	_, d := seedHospital(t, db, 1)
	echo := seedTreatment(t, db, "Echocardiography")

	// Department treatments are not bound to a hospital.
	require.NoError(t, SetAssociation(ctx, db, staffOf(7), AssocDepartmentTreatments, d.ID, []uint{echo.ID}))

	detail, err := GetDepartment(ctx, db, d.ID)
	require.NoError(t, err)
	require.Len(t, detail.Treatments, 1)
	assert.Equal(t, echo.ID, detail.Treatments[0].ID)

	requireKind(t, SetAssociation(ctx, db, superAdmin, AssocDepartmentTreatments, 999, []uint{echo.ID}), KindNotFound)
}

func TestSetAssociation_Errors(t *testing.T) {
	db := setupTestDB(t)
	h, d := seedHospital(t, db, 1)

	requireKind(t, SetAssociation(ctx, db, superAdmin, AssociationKind("rooms"), h.ID, nil), KindInvalidInput)
	requireKind(t, SetAssociation(ctx, db, staffOf(2), AssocDepartments, h.ID, []uint{d.ID}), KindForbidden)
	requireKind(t, SetAssociation(ctx, db, superAdmin, AssocDepartments, 999, []uint{d.ID}), KindNotFound)

	_, err := ParseAssociationKind("hospital_treatments")
	assert.NoError(t, err)
	_, err = ParseAssociationKind("Departments")
	requireKind(t, err, KindInvalidInput)
}
