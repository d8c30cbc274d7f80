package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ctx        = context.Background()
	superAdmin = Scope{UserID: 1, Roles: []string{RoleSuperAdmin}}
)

func staffOf(hospitalID uint) Scope {
	return Scope{UserID: 10 + hospitalID, HospitalID: hospitalID, Roles: []string{"hospital admin"}}
}

// setupTestDB opens a private in-memory database for the calling test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:service_"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, model.Migrate(db))
	return db
}

// seedHospital inserts hospital id and one department linked to it.
func seedHospital(t *testing.T, db *gorm.DB, id uint) (model.Hospital, model.Department) {
	t.Helper()
	h := model.Hospital{
		ID:           id,
		Name:         "Hospital " + string(rune('A'+id-1)),
		ProvinceID:   3,
		DistrictID:   27,
		CityID:       301,
		PhoneNo:      "014221119",
		EmailAddress: "info" + string(rune('a'+id-1)) + "@hospital.org",
		Website:      "https://" + string(rune('a'+id-1)) + ".hospital.org",
	}
	require.NoError(t, db.Create(&h).Error)

	d := model.Department{
		Name:       "Cardiology " + string(rune('A'+id-1)),
		NepaliName: "मुटु रोग " + string(rune('A'+id-1)),
	}
	require.NoError(t, db.Create(&d).Error)
	require.NoError(t, db.Create(&model.HospitalDepartment{HospitalID: h.ID, DepartmentID: d.ID}).Error)
	return h, d
}

func seedTreatment(t *testing.T, db *gorm.DB, name string) model.Treatment {
	t.Helper()
	tr := model.Treatment{Name: name, NepaliName: name + " (ne)", Type: model.TreatmentConsulting, Price: 1500}
	require.NoError(t, db.Create(&tr).Error)
	return tr
}

func seedDoctor(t *testing.T, db *gorm.DB, h model.Hospital, d model.Department) model.Doctor {
	t.Helper()
	doc := model.Doctor{
		RegNo:        10234,
		UserID:       42,
		FullName:     "Dr. Sita Sharma",
		EmailAddress: "sita" + string(rune('a'+h.ID-1)) + "@hospital.org",
		MobileNumber: "9801234567",
		HospitalID:   h.ID,
		DepartmentID: d.ID,
		Degree:       "MBBS",
		Speciality:   "Cardiology",
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), err.Error())
}
