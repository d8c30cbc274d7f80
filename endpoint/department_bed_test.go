package endpoint_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func departmentBeds(t *testing.T, db *gorm.DB, id uint) uint {
	t.Helper()
	var d model.Department
	require.NoError(t, db.First(&d, id).Error)
	return d.NoOfBeds
}

func TestBedLedger_Scenarios(t *testing.T) {
	r, db := setupEndpointTest(t)
	h, d := seedHospital(t, db, 1)
	path := fmt.Sprintf("/hospital/%d/department/%d/beds", h.ID, d.ID)
	bed := map[string]interface{}{"availability": true, "price_per_day": 500.00}

	w, env := performRequest(t, r, apiRequest{method: http.MethodPost, path: path, token: staffToken, body: bed})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)
	var first model.DepartmentBed
	decodeData(t, env, &first)
	assert.Equal(t, uint(1), first.BedNo)
	assert.Equal(t, uint(1), departmentBeds(t, db, d.ID))

	w, env = performRequest(t, r, apiRequest{method: http.MethodPost, path: path, token: staffToken, body: bed})
	require.Equal(t, http.StatusCreated, w.Code, env.Message)
	var second model.DepartmentBed
	decodeData(t, env, &second)
	assert.Equal(t, uint(2), second.BedNo)
	assert.Equal(t, uint(2), departmentBeds(t, db, d.ID))

	w, env = performRequest(t, r, apiRequest{method: http.MethodDelete, path: path, token: staffToken})
	require.Equal(t, http.StatusOK, w.Code, env.Message)
	assert.Equal(t, uint(1), departmentBeds(t, db, d.ID))

	w, env = performRequest(t, r, apiRequest{
		method: http.MethodPut,
		path:   fmt.Sprintf("%s/%d", path, first.ID),
		token:  staffToken,
		body:   map[string]interface{}{"availability": false, "price_per_day": 650.00},
	})
	require.Equal(t, http.StatusOK, w.Code, env.Message)

	w, env = performRequest(t, r, apiRequest{method: http.MethodDelete, path: path, token: staffToken})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "cannot delete the last bed while unavailable", env.Message)
	assert.Equal(t, uint(1), departmentBeds(t, db, d.ID))

	var count int64
	require.NoError(t, db.Model(&model.DepartmentBed{}).Where("department_id = ?", d.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBedLedger_NumbersAreNotReused(t *testing.T) {
	r, db := setupEndpointTest(t)
	h, d := seedHospital(t, db, 1)
	path := fmt.Sprintf("/hospital/%d/department/%d/beds", h.ID, d.ID)
	bed := map[string]interface{}{"availability": true, "price_per_day": 500}

	for i := 0; i < 2; i++ {
		w, _ := performRequest(t, r, apiRequest{method: http.MethodPost, path: path, token: staffToken, body: bed})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w, _ := performRequest(t, r, apiRequest{method: http.MethodDelete, path: path, token: staffToken})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := performRequest(t, r, apiRequest{method: http.MethodPost, path: path, token: staffToken, body: bed})
	require.Equal(t, http.StatusCreated, w.Code)
	var next model.DepartmentBed
	decodeData(t, env, &next)
	assert.Equal(t, uint(3), next.BedNo)
	assert.Equal(t, uint(2), departmentBeds(t, db, d.ID))
}

func TestBedLedger_Errors(t *testing.T) {
	r, db := setupEndpointTest(t)
	h, d := seedHospital(t, db, 1)
	seedHospital(t, db, 2)
	path := fmt.Sprintf("/hospital/%d/department/%d/beds", h.ID, d.ID)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		status int
	}{
		{name: "missing availability", method: http.MethodPost, path: path, token: staffToken, body: map[string]interface{}{"price_per_day": 500}, status: http.StatusBadRequest},
		{name: "negative price", method: http.MethodPost, path: path, token: staffToken, body: map[string]interface{}{"availability": true, "price_per_day": -1}, status: http.StatusBadRequest},
		{name: "department not in hospital", method: http.MethodPost, path: "/hospital/1/department/2/beds", token: staffToken, body: map[string]interface{}{"availability": true, "price_per_day": 1}, status: http.StatusNotFound},
		{name: "other hospital", method: http.MethodPost, path: path, token: otherToken, body: map[string]interface{}{"availability": true, "price_per_day": 1}, status: http.StatusForbidden},
		{name: "delete from empty department", method: http.MethodDelete, path: path, token: staffToken, status: http.StatusNotFound},
		{name: "unknown bed", method: http.MethodGet, path: path + "/42", token: staffToken, status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := performRequest(t, r, apiRequest{method: tt.method, path: tt.path, token: tt.token, body: tt.body})
			assert.Equal(t, tt.status, w.Code, env.Message)
		})
	}
	assert.Zero(t, departmentBeds(t, db, d.ID))
}

func TestListBeds_AvailabilityFilter(t *testing.T) {
	r, db := setupEndpointTest(t)
	h, d := seedHospital(t, db, 1)
	path := fmt.Sprintf("/hospital/%d/department/%d/beds", h.ID, d.ID)

	for _, available := range []bool{true, false, true} {
		w, _ := performRequest(t, r, apiRequest{
			method: http.MethodPost,
			path:   path,
			token:  staffToken,
			body:   map[string]interface{}{"availability": available, "price_per_day": 500},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, env := performRequest(t, r, apiRequest{method: http.MethodGet, path: path + "?availability=true", token: staffToken})
	require.Equal(t, http.StatusOK, w.Code)
	var beds []model.DepartmentBed
	decodeData(t, env, &beds)
	assert.Len(t, beds, 2)

	w, env = performRequest(t, r, apiRequest{method: http.MethodGet, path: path, token: staffToken})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &beds)
	assert.Len(t, beds, 3)

	w, _ = performRequest(t, r, apiRequest{method: http.MethodGet, path: path + "?availability=maybe", token: staffToken})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
