package endpoint_test

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hospitalBody(email, website string) map[string]interface{} {
	return map[string]interface{}{
		"name":          "  Bir   Hospital ",
		"province_id":   3,
		"district_id":   27,
		"city_id":       301,
		"phone_no":      "014221119",
		"email_address": email,
		"website":       website,
		"no_of_beds":    350,
	}
}

func TestCreateHospital(t *testing.T) {
	r, db := setupEndpointTest(t)
	dept := model.Department{Name: "Cardiology", NepaliName: "मुटु रोग"}
	require.NoError(t, db.Create(&dept).Error)
	tr := model.Treatment{Name: "Echo", NepaliName: "इको", Type: model.TreatmentConsulting, Price: 2500}
	require.NoError(t, db.Create(&tr).Error)

	body := hospitalBody("Info@BirHospital.org", "https://birhospital.org")
	body["department_ids"] = []uint{dept.ID}
	body["treatment_ids"] = []uint{tr.ID}
	w, env := performRequest(t, r, apiRequest{method: http.MethodPost, path: "/hospital", token: superToken, body: body})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)

	var h model.Hospital
	decodeData(t, env, &h)
	assert.Equal(t, "Bir Hospital", h.Name)
	assert.Equal(t, "info@birhospital.org", h.EmailAddress)
	assert.False(t, h.Status)

	w, env = performRequest(t, r, apiRequest{method: http.MethodGet, path: "/hospital/" + itoa(h.ID), token: superToken})
	require.Equal(t, http.StatusOK, w.Code)
	var detail model.HospitalDetail
	decodeData(t, env, &detail)
	require.Len(t, detail.Departments, 1)
	require.Len(t, detail.Treatments, 1)
	assert.Equal(t, dept.ID, detail.Departments[0].ID)
	assert.Equal(t, tr.ID, detail.Treatments[0].ID)

	w, env = performRequest(t, r, apiRequest{
		method: http.MethodPost,
		path:   "/hospital",
		token:  superToken,
		body:   hospitalBody("info@birhospital.org", "https://other.org"),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email address has already been taken", env.Message)
}

func TestCreateHospital_RollsBackWhenTreatmentsMissing(t *testing.T) {
	r, db := setupEndpointTest(t)

	body := hospitalBody("info@birhospital.org", "https://birhospital.org")
	body["treatment_ids"] = []uint{404}
	w, env := performRequest(t, r, apiRequest{method: http.MethodPost, path: "/hospital", token: superToken, body: body})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "treatments couldn't be found", env.Message)

	var count int64
	require.NoError(t, db.Model(&model.Hospital{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHospital_ScopeRules(t *testing.T) {
	r, db := setupEndpointTest(t)
	seedHospital(t, db, 1)
	seedHospital(t, db, 2)

	w, _ := performRequest(t, r, apiRequest{method: http.MethodGet, path: "/hospitals", token: staffToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := performRequest(t, r, apiRequest{method: http.MethodGet, path: "/hospitals", token: superToken})
	require.Equal(t, http.StatusOK, w.Code)
	var all []model.Hospital
	decodeData(t, env, &all)
	assert.Len(t, all, 2)

	// Staff asking for another hospital get their own.
	w, env = performRequest(t, r, apiRequest{method: http.MethodGet, path: "/hospital/2", token: staffToken})
	require.Equal(t, http.StatusOK, w.Code)
	var detail model.HospitalDetail
	decodeData(t, env, &detail)
	assert.Equal(t, uint(1), detail.ID)

	w, _ = performRequest(t, r, apiRequest{method: http.MethodPut, path: "/hospital/1/status", token: staffToken, body: map[string]bool{"status": true}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = performRequest(t, r, apiRequest{method: http.MethodPut, path: "/hospital/1/status", token: superToken, body: map[string]bool{"status": true}})
	require.Equal(t, http.StatusOK, w.Code, env.Message)
	var h model.Hospital
	require.NoError(t, db.First(&h, 1).Error)
	assert.True(t, h.Status)
}

func TestUpdateHospital(t *testing.T) {
	r, db := setupEndpointTest(t)
	seedHospital(t, db, 1)
	seedHospital(t, db, 2)

	body := hospitalBody("contact@hospital1.org", "https://hospital1.org")
	body["name"] = "Hospital One"
	w, env := performRequest(t, r, apiRequest{method: http.MethodPut, path: "/hospital/1", token: staffToken, body: body})
	require.Equal(t, http.StatusOK, w.Code, env.Message)

	var h model.Hospital
	require.NoError(t, db.First(&h, 1).Error)
	assert.Equal(t, "Hospital One", h.Name)
	assert.Equal(t, "contact@hospital1.org", h.EmailAddress)

	// department_ids omitted keeps the existing edge.
	var edges int64
	require.NoError(t, db.Model(&model.HospitalDepartment{}).Where("hospital_id = ?", 1).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	w, _ = performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/hospital/1",
		token:  staffToken,
		body:   hospitalBody("info2@hospital.org", "https://hospital1.org"),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteHospital_Cascades(t *testing.T) {
	r, db := setupEndpointTest(t)
	h, d := seedHospital(t, db, 1)
	doc := seedDoctor(t, db, h, d)
	postOpdHour(t, r, h.ID, "Monday", "08:00:00", "17:00:00")
	w, _ := performRequest(t, r, apiRequest{
		method: http.MethodPost,
		path:   "/doctor/" + itoa(doc.ID) + "/doctor-hours",
		token:  staffToken,
		body:   doctorHourBody("Monday", "09:00:00", "10:00:00"),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = performRequest(t, r, apiRequest{
		method: http.MethodPost,
		path:   "/hospital/1/department/" + itoa(d.ID) + "/beds",
		token:  staffToken,
		body:   map[string]interface{}{"availability": true, "price_per_day": 500},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = performRequest(t, r, apiRequest{method: http.MethodDelete, path: "/hospital/1", token: staffToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := performRequest(t, r, apiRequest{method: http.MethodDelete, path: "/hospital/1", token: superToken})
	require.Equal(t, http.StatusOK, w.Code, env.Message)

	for _, m := range []interface{}{
		&model.Hospital{},
		&model.Doctor{},
		&model.DoctorHour{},
		&model.OpdHour{},
		&model.DepartmentBed{},
		&model.HospitalDepartment{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}
	assert.Zero(t, departmentBeds(t, db, d.ID))

	w, _ = performRequest(t, r, apiRequest{method: http.MethodDelete, path: "/hospital/1", token: superToken})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
