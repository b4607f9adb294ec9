package handler

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tvwall/multiview/pkg/link"
	"github.com/tvwall/multiview/pkg/live"
	"github.com/tvwall/multiview/pkg/model"
	"github.com/tvwall/multiview/pkg/session"
	"github.com/tvwall/multiview/pkg/wall"
)

const (
	sessionName = "multiview"

	defaultTopSize = 10
	maxTopSize     = 100
)

var outcomes = []model.Outcome{
	model.OutcomeLive,
	model.OutcomeOffline,
	model.OutcomeParseMiss,
	model.OutcomeTransportError,
}

type liveService interface {
	ResolveLive(ctx context.Context, channelID string) (model.LiveResolution, error)
	Check(ctx context.Context, channelID string) (*live.Report, error)
}

type wallStorage interface {
	GetWall(ctx context.Context, viewerID string) (*model.Wall, error)
	SaveWall(ctx context.Context, wall *model.Wall) error
	DeleteWall(ctx context.Context, viewerID string) error
}

type statusService interface {
	Snapshot() map[string]model.Status
	Status(channelID string) (model.Status, bool)
	LastRun() time.Time
}

type statsService interface {
	Get(metric, channelID string) (int64, error)
	Top(metric string, n int64) (map[string]int64, error)
}

type Opts struct {
	SessionSecret    string
	BatchConcurrency int
}

type handler struct {
	live        liveService
	storage     wallStorage
	status      statusService
	stats       statsService
	dispatcher  *wall.Dispatcher
	concurrency int
	viewers     *viewerLocks
}

// viewerLocks serializes read-modify-write cycles of a single viewer's wall.
type viewerLocks struct {
	locks sync.Map
}

func (v *viewerLocks) lock(viewerID string) func() {
	mu, _ := v.locks.LoadOrStore(viewerID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}

// New builds the HTTP API. status and stats may be nil when the monitor or
// Redis counters are disabled.
func New(resolver liveService, storage wallStorage, status statusService, stats statsService, opts Opts) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	r.Use(sessions.Sessions(sessionName, store))

	h := handler{
		live:        resolver,
		storage:     storage,
		status:      status,
		stats:       stats,
		dispatcher:  wall.NewDispatcher(resolver),
		concurrency: opts.BatchConcurrency,
		viewers:     &viewerLocks{},
	}

	r.GET("/api/ping", h.ping)

	r.GET("/api/checkLiveStatus", h.checkLiveStatus)
	r.POST("/api/checkLiveStatus", h.checkLiveStatusBatch)

	r.GET("/api/catalog", h.catalog)
	r.GET("/api/status", h.monitorStatus)
	r.GET("/api/status/:channelId", h.channelStatus)
	r.GET("/api/stats", h.outcomeStats)

	r.GET("/api/wall", h.getWall)
	r.POST("/api/wall/actions", h.dispatch)
	r.DELETE("/api/wall", h.resetWall)

	return r
}

type liveStatus struct {
	ChannelID   string             `json:"channelId"`
	LiveURL     *string            `json:"liveUrl"`
	ResolvedVia *model.MatcherKind `json:"resolvedVia"`
	Error       string             `json:"error,omitempty"`
	Debug       *live.Report       `json:"debug,omitempty"`
}

func newLiveStatus(channelID string, resolution model.LiveResolution) liveStatus {
	status := liveStatus{ChannelID: channelID}
	if resolution.IsLive() {
		status.LiveURL = &resolution.WatchURL
		status.ResolvedVia = &resolution.ResolvedVia
	}
	return status
}

func (h handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// parseChannelID accepts a bare channel id or a youtube.com/channel/... link.
func parseChannelID(input string) (string, error) {
	ref, err := link.ParseChannelRef(input)
	if err != nil {
		return "", err
	}

	if !ref.NeedsResolution() {
		return "", errors.Wrapf(model.ErrInvalidChannelID, "%q is a video, not a channel", input)
	}

	return ref.Identifier, nil
}

func (h handler) checkLiveStatus(c *gin.Context) {
	channelID, err := parseChannelID(c.Query("channelId"))
	if err != nil {
		c.JSON(badRequest(err))
		return
	}

	if debug := c.Query("debug"); debug == "1" || debug == "true" {
		report, err := h.live.Check(c.Request.Context(), channelID)
		if err != nil {
			c.JSON(checkError(err))
			return
		}

		status := newLiveStatus(channelID, report.Resolution)
		status.Debug = report
		c.JSON(http.StatusOK, status)
		return
	}

	resolution, err := h.live.ResolveLive(c.Request.Context(), channelID)
	if err != nil {
		c.JSON(checkError(err))
		return
	}

	c.JSON(http.StatusOK, newLiveStatus(channelID, resolution))
}

type batchRequest struct {
	ChannelIDs []string `json:"channel_ids" binding:"required,min=1,max=50,dive,required"`
}

func (h handler) checkLiveStatusBatch(c *gin.Context) {
	req := batchRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(badRequest(err))
		return
	}

	ids := make([]string, 0, len(req.ChannelIDs))
	for _, input := range req.ChannelIDs {
		id, err := parseChannelID(input)
		if err != nil {
			c.JSON(badRequest(err))
			return
		}
		ids = append(ids, id)
	}

	results, err := wall.CheckAll(c.Request.Context(), h.live, ids, h.concurrency)
	if err != nil {
		c.JSON(checkError(err))
		return
	}

	out := make(map[string]liveStatus, len(results))
	for id, result := range results {
		status := newLiveStatus(id, result.Resolution)
		if result.Err != nil {
			status.Error = result.Err.Error()
		}
		out[id] = status
	}

	c.JSON(http.StatusOK, gin.H{"channels": out})
}

func (h handler) catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": wall.DefaultCatalog()})
}

func (h handler) monitorStatus(c *gin.Context) {
	if h.status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "monitor is disabled"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"last_run": h.status.LastRun(),
		"channels": h.status.Snapshot(),
	})
}

func (h handler) channelStatus(c *gin.Context) {
	if h.status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "monitor is disabled"})
		return
	}

	channelID, err := parseChannelID(c.Param("channelId"))
	if err != nil {
		c.JSON(badRequest(err))
		return
	}

	status, ok := h.status.Status(channelID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": model.ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h handler) outcomeStats(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stats are disabled"})
		return
	}

	if input := c.Query("channelId"); input != "" {
		channelID, err := parseChannelID(input)
		if err != nil {
			c.JSON(badRequest(err))
			return
		}

		counts := make(map[model.Outcome]int64, len(outcomes))
		for _, outcome := range outcomes {
			count, err := h.stats.Get(string(outcome), channelID)
			if err != nil {
				c.JSON(internalError(err))
				return
			}
			counts[outcome] = count
		}

		c.JSON(http.StatusOK, gin.H{"channelId": channelID, "outcomes": counts})
		return
	}

	metric := model.Outcome(c.DefaultQuery("outcome", string(model.OutcomeLive)))
	if !validOutcome(metric) {
		c.JSON(badRequest(errors.Errorf("unknown outcome %q", metric)))
		return
	}

	n, err := strconv.ParseInt(c.DefaultQuery("n", strconv.Itoa(defaultTopSize)), 10, 64)
	if err != nil || n < 1 || n > maxTopSize {
		c.JSON(badRequest(errors.Errorf("n must be between 1 and %d", maxTopSize)))
		return
	}

	top, err := h.stats.Top(string(metric), n)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": metric, "top": top})
}

func validOutcome(outcome model.Outcome) bool {
	for _, known := range outcomes {
		if known == outcome {
			return true
		}
	}
	return false
}

func (h handler) loadWall(c *gin.Context, viewerID string) (*model.Wall, error) {
	state, err := h.storage.GetWall(c.Request.Context(), viewerID)
	if errors.Is(err, model.ErrNotFound) {
		return wall.New(viewerID), nil
	}

	return state, err
}

func (h handler) getWall(c *gin.Context) {
	viewerID, err := session.Viewer(c)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	state, err := h.loadWall(c, viewerID)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, wallView(state))
}

func (h handler) dispatch(c *gin.Context) {
	action := wall.Action{}
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(badRequest(err))
		return
	}

	viewerID, err := session.Viewer(c)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	// Held across the live check so that overlapping actions apply in turn.
	unlock := h.viewers.lock(viewerID)
	defer unlock()

	state, err := h.loadWall(c, viewerID)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	next, err := h.dispatcher.Dispatch(c.Request.Context(), *state, action)
	if err != nil {
		if errors.Is(err, model.ErrInvalidAction) || errors.Is(err, model.ErrInvalidURL) || errors.Is(err, model.ErrAlreadyExists) {
			c.JSON(badRequest(err))
			return
		}

		c.JSON(internalError(err))
		return
	}

	if err := h.storage.SaveWall(c.Request.Context(), &next); err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, wallView(&next))
}

func (h handler) resetWall(c *gin.Context) {
	viewerID, err := session.Viewer(c)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	unlock := h.viewers.lock(viewerID)
	defer unlock()

	if err := h.storage.DeleteWall(c.Request.Context(), viewerID); err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, wallView(wall.New(viewerID)))
}

func wallView(state *model.Wall) gin.H {
	return gin.H{
		"wall":    state,
		"columns": wall.GridColumns(len(state.Watching)),
	}
}

func checkError(err error) (int, interface{}) {
	if errors.Is(err, model.ErrInvalidChannelID) {
		return badRequest(err)
	}

	log.WithError(err).Error("live status check failed")
	return http.StatusInternalServerError, gin.H{"error": "live status check failed", "message": err.Error()}
}

func badRequest(err error) (int, interface{}) {
	return http.StatusBadRequest, gin.H{"error": err.Error()}
}

func internalError(err error) (int, interface{}) {
	log.Printf("server error: %v", err)
	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
