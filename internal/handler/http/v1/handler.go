package v1

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/shenikar/rtcc_dashboard/internal/broadcast"
	"github.com/shenikar/rtcc_dashboard/internal/config"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/shenikar/rtcc_dashboard/internal/service"
	"github.com/shenikar/rtcc_dashboard/internal/transit"
	"github.com/sirupsen/logrus"
)

// LiveHub - реестр подписчиков живого канала
type LiveHub interface {
	Register(ctx context.Context, conn broadcast.Conn, snapshot broadcast.SnapshotFunc) (*broadcast.Subscriber, error)
	Unregister(sub *broadcast.Subscriber)
	Count() int
}

// TransitFeed - источник данных об общественном транспорте
type TransitFeed interface {
	MetroIncidents(ctx context.Context) *transit.MetroStatus
	Buses() *transit.BusStatus
}

type Handler struct {
	service  service.CommandCenter
	hub      LiveHub
	transit  TransitFeed
	logger   *logrus.Logger
	validate *validator.Validate
	upgrader websocket.Upgrader
	cfg      *config.Config
}

func NewHandler(svc service.CommandCenter, hub LiveHub, feed TransitFeed, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	// В ошибках валидации используем имена полей из JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		service:  svc,
		hub:      hub,
		transit:  feed,
		logger:   logger,
		validate: validate,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     newCheckOrigin(cfg.CORSAllowedOrigins, logger),
		},
		cfg: cfg,
	}
}

// bind разбирает тело запроса и проверяет его. При ошибке ответ уже отправлен.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: validationFields(err)})
		return false
	}
	return true
}

// validationFields сопоставляет путь к полю (location.lat) с нарушенным правилом
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = fe.Tag()
	}
	return fields
}

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error, entity string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Entity already exists")
		c.JSON(http.StatusConflict, ErrorResponse{Error: entity + " already exists"})
	case errors.Is(err, models.ErrUnknownIncident):
		log.WithError(err).Warn("Reference to unknown incident")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "referenced incident not found"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// pagination читает skip и limit; некорректные значения нормализует сервис
func pagination(c *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	return skip, limit
}

func queryBool(c *gin.Context, key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(c.DefaultQuery(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
