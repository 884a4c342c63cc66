// Package endpoint holds the Gin handlers of the clinic API.
package endpoint

import (
	"errors"

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/config"
	"github.com/ariebrainware/dentist-api/messaging"
	"github.com/ariebrainware/dentist-api/middleware"
	"github.com/ariebrainware/dentist-api/service"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler serves every route of the API.
type Handler struct {
	Patients   *service.PatientService
	Complaints *service.ComplaintService
	FollowUps  *service.FollowUpService
	Medical    *service.MedicalService
	Catalog    *service.CatalogService
	Reference  *service.ReferenceService
	Accounts   *service.AccountService

	Guard    *auth.Guard
	Sessions *util.SessionStore
	Queue    *messaging.Broadcaster
	Clock    service.Clock

	db  *gorm.DB
	rdb *redis.Client
	log zerolog.Logger
}

// NewHandler wires the services over db and rdb. rdb may be nil.
func NewHandler(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *Handler {
	clock := service.NewClock(cfg.Location())
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenIssuer)
	sessions := util.NewSessionStore(rdb)
	queue := messaging.NewBroadcaster()

	return &Handler{
		Patients:   service.NewPatientService(db, clock),
		Complaints: service.NewComplaintService(db, clock, queue),
		FollowUps:  service.NewFollowUpService(db, clock),
		Medical:    service.NewMedicalService(db),
		Catalog:    service.NewCatalogService(db),
		Reference:  service.NewReferenceService(db, cfg.ReferenceCacheTTL),
		Accounts:   service.NewAccountService(db, codec, sessions, clock),
		Guard:      auth.NewGuard(codec),
		Sessions:   sessions,
		Queue:      queue,
		Clock:      clock,
		db:         db,
		rdb:        rdb,
		log:        log,
	}
}

// respondError maps a service failure onto its status code.
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}

	params := util.APIErrorParams{Msg: se.Msg, Err: err}
	switch se.Kind {
	case service.KindBadRequest:
		util.CallUserError(c, params)
	case service.KindNotFound:
		util.CallErrorNotFound(c, params)
	case service.KindConflict:
		util.CallConflict(c, params)
	case service.KindForbidden:
		util.CallForbidden(c, params)
	case service.KindUnauthorized:
		util.CallUserNotAuthorized(c, params)
	default:
		util.CallServerError(c, params)
	}
}

func bindJSONOrRespond(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: util.ValidationMessage(err), Err: err})
		return false
	}
	return true
}

func claimsOrRespond(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Invalid token", Err: errors.New("claims missing from context")})
		return nil, false
	}
	return claims, true
}
