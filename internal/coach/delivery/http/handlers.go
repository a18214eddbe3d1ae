package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"golf-coach/pkg/response"
)

// Process godoc
// @Summary     Answer a golf question (legacy)
// @Description Routes the question to a coaching persona and returns the generated answer.
// @Tags        Coach
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Question"
// @Success     200  {object} processResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     500  {object} response.DetailResp "Internal Server Error"
// @Router      /process/ [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		e := h.mapError(err)
		response.Detail(c, e.status, e.message)
		return
	}

	output, err := h.uc.Answer(ctx, req.toAnswerInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		e := h.mapError(err)
		response.Detail(c, e.status, e.message)
		return
	}

	c.JSON(http.StatusOK, h.newProcessResp(output))
}

// Answer godoc
// @Summary     Answer a golf question
// @Description Routes the question to a coaching persona and returns the answer with the routing outcome.
// @Tags        Coach
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Question"
// @Success     200  {object} answerResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/coach/answer [POST]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Answer(ctx, req.toAnswerInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newAnswerResp(output))
}

// Route godoc
// @Summary     Classify a golf question
// @Description Runs only the routing step and returns the chosen destination. Useful for prompt debugging.
// @Tags        Coach
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Question"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/coach/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toRouteInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Destinations godoc
// @Summary     List coaching personas
// @Description Returns the registered destinations in menu order.
// @Tags        Coach
// @Produce     json
// @Success     200 {object} destinationsResp
// @Router      /api/v1/coach/destinations [GET]
func (h *handler) Destinations(c *gin.Context) {
	response.OK(c, h.newDestinationsResp(h.uc.Destinations(c.Request.Context())))
}

func (h *handler) writeError(c *gin.Context, err error) {
	e := h.mapError(err)
	if e.status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.Error(c, errors.New(e.message), nil)
}
