package controllers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"traveldesigner/internal/api/views"
	"traveldesigner/internal/models/request_models"
	"traveldesigner/internal/models/response_models"
	"traveldesigner/internal/services"
	"traveldesigner/pkg/utils"
)

type PlannerController struct {
	planner services.TravelPlannerInterface
}

func NewPlannerController(planner services.TravelPlannerInterface) *PlannerController {
	return &PlannerController{
		planner: planner,
	}
}

type indexPage struct {
	Mood   string
	Error  string
	Report template.HTML
}

// GET /
func (p *PlannerController) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", indexPage{})
}

// POST /plan
func (p *PlannerController) PlanFormHandler(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", indexPage{Error: "Invalid request format"})
		return
	}

	report, err := p.planner.PlanTrip(c.Request.Context(), req.Mood)
	if err != nil {
		code, message := utils.ServiceErrorStatus(err)
		if code >= http.StatusInternalServerError {
			c.Error(err)
		}
		c.HTML(code, "index.html", indexPage{Mood: req.Mood, Error: message})
		return
	}

	c.HTML(http.StatusOK, "index.html", indexPage{
		Mood:   req.Mood,
		Report: views.RenderMarkdown(report.Markdown()),
	})
}

// PlanTripHandler godoc
// @Summary Plan a trip
// @Description Suggest a destination from the traveller's mood, then collect flights, hotels and attractions for it
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Mood or travel interests"
// @Success 200 {object} utils.APIResponse{data=response_models.PlanTripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/plans [post]
func (p *PlannerController) PlanTripHandler(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	report, err := p.planner.PlanTrip(c.Request.Context(), req.Mood)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PlanTripResponse{
		ItineraryReport: report,
		Markdown:        report.Markdown(),
	}, "Travel plan created successfully")
}
