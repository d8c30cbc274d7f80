package endpoint_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ariebrainware/hospital-directory/endpoint"
	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	superToken  = "Bearer super"
	staffToken  = "Bearer staff-1"
	otherToken  = "Bearer staff-2"
	deniedToken = "Bearer denied"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	restore := util.SetLoggerOutputForTest(io.Discard)
	code := m.Run()
	restore()
	os.Exit(code)
}

// stubProvider grants every permission to the identities it knows.
type stubProvider struct {
	identities map[string]*identity.Identity
}

func newStubProvider() *stubProvider {
	return &stubProvider{identities: map[string]*identity.Identity{
		superToken:  {Permitted: true, UserID: 1, Roles: []string{"super admin"}},
		staffToken:  {Permitted: true, UserID: 2, Roles: []string{"hospital admin"}, HospitalID: 1},
		otherToken:  {Permitted: true, UserID: 3, Roles: []string{"hospital admin"}, HospitalID: 2},
		deniedToken: {Permitted: false, UserID: 4, HospitalID: 1},
	}}
}

func (s *stubProvider) Check(_ context.Context, token, _ string) (*identity.Identity, error) {
	if token == "" {
		return nil, identity.ErrMissingToken
	}
	id, ok := s.identities[token]
	if !ok {
		return nil, &identity.StatusError{StatusCode: 401, Message: "invalid token"}
	}
	return id, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:endpoint_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, model.Migrate(db))
	return db
}

func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	r := endpoint.SetupRouter(endpoint.RouterOptions{
		AppName:  "hospital-directory",
		DB:       db,
		Provider: newStubProvider(),
	})
	return r, db
}

// seedHospital creates hospital id with one department linked to it.
func seedHospital(t *testing.T, db *gorm.DB, id uint) (model.Hospital, model.Department) {
	t.Helper()
	h := model.Hospital{
		ID:           id,
		Name:         fmt.Sprintf("Hospital %d", id),
		ProvinceID:   3,
		DistrictID:   27,
		CityID:       301,
		PhoneNo:      "014221119",
		EmailAddress: fmt.Sprintf("info%d@hospital.org", id),
		Website:      fmt.Sprintf("https://hospital%d.org", id),
	}
	require.NoError(t, db.Create(&h).Error)

	d := model.Department{Name: fmt.Sprintf("Cardiology %d", id), NepaliName: fmt.Sprintf("मुटु रोग %d", id)}
	require.NoError(t, db.Create(&d).Error)
	require.NoError(t, db.Create(&model.HospitalDepartment{HospitalID: h.ID, DepartmentID: d.ID}).Error)
	return h, d
}

func seedDoctor(t *testing.T, db *gorm.DB, h model.Hospital, d model.Department) model.Doctor {
	t.Helper()
	doc := model.Doctor{
		RegNo:        10234,
		UserID:       42,
		FullName:     "Dr. Sita Sharma",
		EmailAddress: fmt.Sprintf("sita%d@hospital.org", h.ID),
		MobileNumber: "9801234567",
		HospitalID:   h.ID,
		DepartmentID: d.ID,
		Degree:       "MBBS",
		Speciality:   "Cardiology",
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

type apiRequest struct {
	method string
	path   string
	token  string
	body   interface{}
}

func performRequest(t *testing.T, r *gin.Engine, ar apiRequest) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader = strings.NewReader("")
	switch v := ar.body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	}

	req := httptest.NewRequest(ar.method, ar.path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ar.token != "" {
		req.Header.Set("Authorization", ar.token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data, "response has no data")
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
