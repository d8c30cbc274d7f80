package endpoint_test

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAssociation_Departments(t *testing.T) {
	r, db := setupEndpointTest(t)
	seedHospital(t, db, 1)
	extra := model.Department{Name: "Neurology", NepaliName: "स्नायु रोग"}
	require.NoError(t, db.Create(&extra).Error)

	w, env := performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/associations/departments/1",
		token:  staffToken,
		body:   map[string][]uint{"ids": {extra.ID, 999}},
	})
	require.Equal(t, http.StatusOK, w.Code, env.Message)

	var edges []model.HospitalDepartment
	require.NoError(t, db.Where("hospital_id = ?", 1).Find(&edges).Error)
	require.Len(t, edges, 1)
	assert.Equal(t, extra.ID, edges[0].DepartmentID)

	// No matching department clears the set.
	w, env = performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/associations/departments/1",
		token:  staffToken,
		body:   map[string][]uint{"ids": {999}},
	})
	require.Equal(t, http.StatusOK, w.Code, env.Message)
	require.NoError(t, db.Where("hospital_id = ?", 1).Find(&edges).Error)
	assert.Empty(t, edges)
}

func TestSetAssociation_TreatmentsRequireAMatch(t *testing.T) {
	r, db := setupEndpointTest(t)
	_, d := seedHospital(t, db, 1)
	tr := model.Treatment{Name: "Echo", NepaliName: "इको", Type: model.TreatmentConsulting, Price: 2500}
	require.NoError(t, db.Create(&tr).Error)
	require.NoError(t, db.Create(&model.HospitalTreatment{HospitalID: 1, TreatmentID: tr.ID}).Error)

	w, env := performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/associations/hospital_treatments/1",
		token:  staffToken,
		body:   map[string][]uint{"ids": {999}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "treatments couldn't be found", env.Message)

	// The failed call left the existing edge in place.
	var count int64
	require.NoError(t, db.Model(&model.HospitalTreatment{}).Where("hospital_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w, env = performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/associations/department_treatments/" + itoa(d.ID),
		token:  otherToken,
		body:   map[string][]uint{"ids": {tr.ID}},
	})
	require.Equal(t, http.StatusOK, w.Code, env.Message)
	require.NoError(t, db.Model(&model.DepartmentTreatment{}).Where("department_id = ?", d.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w, _ = performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   "/associations/department_treatments/" + itoa(d.ID),
		token:  staffToken,
		body:   map[string][]uint{"ids": {}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetAssociation_Errors(t *testing.T) {
	r, db := setupEndpointTest(t)
	seedHospital(t, db, 1)
	seedHospital(t, db, 2)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{name: "unknown kind", path: "/associations/rooms/1", body: map[string][]uint{"ids": {1}}, status: http.StatusBadRequest},
		{name: "other hospital", path: "/associations/departments/2", body: map[string][]uint{"ids": {1}}, status: http.StatusForbidden},
		{name: "unknown department", path: "/associations/department_treatments/99", body: map[string][]uint{"ids": {1}}, status: http.StatusNotFound},
		{name: "malformed body", path: "/associations/departments/1", body: `{"ids": "one"}`, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := performRequest(t, r, apiRequest{method: http.MethodPut, path: tt.path, token: staffToken, body: tt.body})
			assert.Equal(t, tt.status, w.Code, env.Message)
		})
	}
}
