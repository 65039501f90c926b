package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"armbridge/internal/app/command"
	"armbridge/internal/app/correlate"
	"armbridge/internal/app/orchestrate"
	"armbridge/internal/app/ports"
	"armbridge/internal/domain/robot"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	OrchestrateUC orchestrate.UseCase
	CommandUC     command.UseCase
	Correlator    *correlate.Tracker
	Records       ports.ActivityRecordRepository
	Poses         *robot.PoseTracker
	KPI           kpiRecorder
}

type kpiRecorder interface {
	RecordSession(corrected, failed bool)
	RecordDispatch(action string, failed bool)
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/session/request", h.sessionRequest)
	api.GET("/robot/pose", h.robotPose)
	api.POST("/robot/position/save", h.savePosition)
	api.GET("/activity/pending", h.activityPending)
	api.GET("/activity/records", h.activityRecords)
	api.GET("/ops/kpi", h.kpi)
}

type sessionRequestBody struct {
	Text  string `json:"text"`
	Kind  string `json:"kind,omitempty"`
	State string `json:"state,omitempty"`
}

type functionResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Update string `json:"update"`
}

type sessionResponse struct {
	Reply    string          `json:"reply"`
	Action   string          `json:"action"`
	State    string          `json:"state"`
	Score    int             `json:"score"`
	Function *functionResult `json:"function,omitempty"`
}

// sessionRequest runs one full mediated exchange: orchestrate the agents,
// then dispatch whatever function call came back. Each leg gets its own
// correlation entry so the activity log shows both the conversation and
// the hardware dispatch with their timings.
func (h Handler) sessionRequest(c context.Context, ctx *app.RequestContext) {
	var body sessionRequestBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Text == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_text", "text is required")
		return
	}

	kind := orchestrate.KindRequest
	if body.Kind == string(orchestrate.KindFeedback) {
		kind = orchestrate.KindFeedback
	}

	token := h.Correlator.Open(string(kind), body.Text, nil)
	started := time.Now()
	outcome := h.OrchestrateUC.Execute(c, orchestrate.Request{
		Kind:  kind,
		Text:  body.Text,
		State: body.State,
	})
	duration := time.Since(started).Seconds()
	score := outcome.Score
	if err := h.Correlator.Close(c, token, outcome.Reply, string(outcome.Action.Name), &duration, &score); err != nil {
		writeError(ctx, err)
		return
	}
	if h.KPI != nil {
		h.KPI.RecordSession(outcome.Corrected, outcome.Failed)
	}

	resp := sessionResponse{
		Reply:  outcome.Reply,
		Action: string(outcome.Action.Name),
		State:  outcome.State,
		Score:  outcome.Score,
	}

	if !outcome.Action.IsNoop() {
		fn, err := h.dispatchFunction(c, outcome.Action)
		if err != nil {
			writeError(ctx, err)
			return
		}
		resp.Function = fn
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dispatchFunction(c context.Context, act robot.Action) (*functionResult, error) {
	token := h.Correlator.Open("Function", string(act.Name), nil)
	started := time.Now()
	result, err := h.CommandUC.Execute(c, act)
	duration := time.Since(started).Seconds()

	closeErr := h.Correlator.Close(c, token, result.Update, string(act.Name), &duration, nil)
	if h.KPI != nil {
		h.KPI.RecordDispatch(string(act.Name), err != nil)
	}
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}
	return &functionResult{
		Name:   string(act.Name),
		Status: result.Status,
		Update: result.Update,
	}, nil
}

type poseResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (h Handler) robotPose(c context.Context, ctx *app.RequestContext) {
	if refresh := string(ctx.Query("refresh")); refresh != "" {
		arm := robot.Arm(refresh)
		if !robot.IsValidArm(arm) {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_arm", "refresh must name Left or Right")
			return
		}
		if _, err := h.CommandUC.QueryPosition(c, arm); err != nil {
			writeError(ctx, err)
			return
		}
	}

	left := h.Poses.Pose(robot.ArmLeft)
	right := h.Poses.Pose(robot.ArmRight)
	ctx.JSON(consts.StatusOK, map[string]poseResponse{
		"left":  {X: left.X, Y: left.Y, Z: left.Z},
		"right": {X: right.X, Y: right.Y, Z: right.Z},
	})
}

type savePositionBody struct {
	Arm string `json:"arm"`
}

func (h Handler) savePosition(c context.Context, ctx *app.RequestContext) {
	var body savePositionBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	arm := robot.Arm(body.Arm)
	if !robot.IsValidArm(arm) {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_arm", "arm must name Left or Right")
		return
	}
	if err := h.CommandUC.SavePosition(c, arm); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": command.StatusSuccess})
}

func (h Handler) activityPending(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]int{
		"pending": h.Correlator.PendingCount(),
	})
}

func (h Handler) activityRecords(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	records, err := h.Records.ListLatest(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"records": records,
	})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, command.ErrMissingParameter):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_parameter", err.Error())
	case errors.Is(err, command.ErrLinkDisabled):
		writeErrorBody(ctx, consts.StatusConflict, "link_disabled", err.Error())
	case errors.Is(err, command.ErrVisionDisabled):
		writeErrorBody(ctx, consts.StatusConflict, "vision_disabled", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
