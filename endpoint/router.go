package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RouterOptions carries the collaborators of the HTTP surface.
type RouterOptions struct {
	AppName  string
	DB       *gorm.DB
	Provider identity.Provider
	// Directory resolves doctor accounts; nil means doctor profiles come
	// from the request body.
	Directory identity.UserDirectory
	Redis     *redis.Client
	RateLimit middleware.RateLimitConfig
}

// SetupRouter builds the gin engine with every route and its permission.
func SetupRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.CORSMiddleware(),
		middleware.Metrics(),
		middleware.DatabaseMiddleware(opts.DB),
		middleware.EndpointCallLogger(),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", opts.AppName),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := func(permission string) gin.HandlerFunc {
		return middleware.Authorize(opts.Provider, permission)
	}
	limit := middleware.RateLimiter(opts.Redis, opts.RateLimit)

	router.GET("/hospital/:hospital_id/opd-hours", auth("view opd hours"), ListOpdHours)
	router.GET("/hospital/:hospital_id/opd-hours/:opd_hour_id", auth("view opd hours"), GetOpdHour)
	router.POST("/hospital/:hospital_id/opd-hours", limit, auth("create opd hour"), CreateOpdHour)
	router.PUT("/hospital/:hospital_id/opd-hours/:opd_hour_id", limit, auth("edit opd hour"), UpdateOpdHour)

	router.GET("/doctor/:doctor_id/doctor-hours", auth("view doctor hours"), ListDoctorHours)
	router.GET("/doctor/:doctor_id/doctor-hours/:doctor_hour_id", auth("view doctor hours"), GetDoctorHour)
	router.POST("/doctor/:doctor_id/doctor-hours", limit, auth("create doctor hour"), CreateDoctorHour)
	router.PUT("/doctor/:doctor_id/doctor-hours/:doctor_hour_id", limit, auth("edit doctor hour"), UpdateDoctorHour)
	router.DELETE("/doctor/:doctor_id/doctor-hours/:doctor_hour_id", limit, auth("delete doctor hour"), DeleteDoctorHour)

	beds := "/hospital/:hospital_id/department/:department_id/beds"
	router.GET(beds, auth("view department beds"), ListBeds)
	router.GET(beds+"/:bed_id", auth("view department beds"), GetBed)
	router.POST(beds, limit, auth("create department bed"), CreateBed)
	router.PUT(beds+"/:bed_id", limit, auth("edit department bed"), UpdateBed)
	router.DELETE(beds, limit, auth("delete department bed"), DeleteLastBed)

	router.PUT("/associations/:kind/:owner_id", limit, auth("edit associations"), SetAssociation)

	router.GET("/hospitals", auth("view hospitals"), ListHospitals)
	router.POST("/hospital", limit, auth("create hospital"), CreateHospital)
	router.GET("/hospital/:hospital_id", auth("view hospitals"), GetHospital)
	router.PUT("/hospital/:hospital_id", limit, auth("edit hospital"), UpdateHospital)
	router.PUT("/hospital/:hospital_id/status", limit, auth("edit hospital status"), SetHospitalStatus)
	router.DELETE("/hospital/:hospital_id", limit, auth("delete hospital"), DeleteHospital)

	router.GET("/departments", auth("view departments"), ListDepartments)
	router.POST("/department", limit, auth("create department"), CreateDepartment)
	router.GET("/department/:department_id", auth("view departments"), GetDepartment)
	router.PUT("/department/:department_id", limit, auth("edit department"), UpdateDepartment)
	router.DELETE("/department/:department_id", limit, auth("delete department"), DeleteDepartment)

	router.GET("/treatments", auth("view treatments"), ListTreatments)
	router.POST("/treatment", limit, auth("create treatment"), CreateTreatment)
	router.GET("/treatment/:treatment_id", auth("view treatments"), GetTreatment)
	router.PUT("/treatment/:treatment_id", limit, auth("edit treatment"), UpdateTreatment)
	router.DELETE("/treatment/:treatment_id", limit, auth("delete treatment"), DeleteTreatment)

	router.GET("/hospital/:hospital_id/doctors", auth("view doctors"), ListDoctors)
	router.POST("/hospital/:hospital_id/doctors", limit, auth("create doctor"), CreateDoctor(opts.Directory))
	router.GET("/doctor/:doctor_id", auth("view doctors"), GetDoctor)
	router.PUT("/doctor/:doctor_id", limit, auth("edit doctor"), UpdateDoctor(opts.Directory))
	router.PUT("/doctor/:doctor_id/status", limit, auth("edit doctor status"), SetDoctorStatus)
	router.DELETE("/doctor/:doctor_id", limit, auth("delete doctor"), DeleteDoctor)

	router.GET("/hospital/:hospital_id/rooms", auth("view hospital rooms"), ListRooms)
	router.GET("/hospital/:hospital_id/rooms/:room_id", auth("view hospital rooms"), GetRoom)
	router.POST("/hospital/:hospital_id/rooms", limit, auth("create hospital room"), CreateRoom)
	router.PUT("/hospital/:hospital_id/rooms/:room_id", limit, auth("edit hospital room"), UpdateRoom)
	router.DELETE("/hospital/:hospital_id/rooms/:room_id", limit, auth("delete hospital room"), DeleteRoom)

	return router
}
