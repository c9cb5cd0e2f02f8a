package comparison

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/fern/pkg/comparison"
	"github.com/Ramsey-B/fern/pkg/datastore"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Register registers comparison routes
func Register(g *echo.Group) {
	g.POST("", Run)
}

type RunResponse struct {
	TruthID     string                   `json:"truth_id"`
	CandidateID string                   `json:"candidate_id"`
	Result      *models.ComparisonResult `json:"result"`
}

// Run compares a candidate dataset against a truth dataset and returns
// the four facet reports
func Run(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "comparison_handler.Run")
	defer span.End()

	req, err := utils.BindRequest[models.ComparisonRequest](c)
	if err != nil {
		return err
	}

	ctx, store, err := ectoinject.GetContext[*datastore.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get dataset store")
	}

	truth, ok := store.Get(req.TruthID)
	if !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "truth dataset not found")
	}
	candidate, ok := store.Get(req.CandidateID)
	if !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "candidate dataset not found")
	}

	ctx, engine, err := ectoinject.GetContext[*comparison.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get comparison engine")
	}

	result, err := engine.Run(ctx, truth.Dataset, candidate.Dataset)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to run comparison")
	}

	return c.JSON(http.StatusOK, RunResponse{
		TruthID:     req.TruthID,
		CandidateID: req.CandidateID,
		Result:      result,
	})
}
