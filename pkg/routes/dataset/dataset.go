package dataset

import (
	"io"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Ramsey-B/fern/pkg/datastore"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/parsers/textparse"
	"github.com/Ramsey-B/fern/pkg/parsers/xmlparse"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/labstack/echo/v4"
)

const (
	FormatText = "text"
	FormatXML  = "xml"
)

// Register registers dataset routes
func Register(g *echo.Group) {
	g.POST("", Upload)
	g.GET("", List)
	g.GET("/:id", Get)
	g.DELETE("/:id", Delete)
}

type UploadResponse struct {
	Dataset *datastore.Held `json:"dataset"`
}

type ListResponse struct {
	Items      []*datastore.Held `json:"items"`
	TotalCount int               `json:"total_count"`
}

// Upload parses the request body in the requested format and stores the
// resulting dataset
func Upload(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "dataset_handler.Upload")
	defer span.End()

	format := c.QueryParam("format")
	if format == "" {
		format = FormatText
	}

	name := c.QueryParam("name")
	if name == "" {
		name = "unnamed"
	}

	var (
		parsed *models.Dataset
		err    error
	)
	switch format {
	case FormatText:
		parsed, err = textparse.Parse(c.Request().Body)
	case FormatXML:
		parsed, err = xmlparse.Parse(c.Request().Body)
	default:
		return httperror.NewHTTPError(http.StatusBadRequest, "format must be 'text' or 'xml'")
	}
	if err != nil {
		if err == io.EOF {
			return httperror.NewHTTPError(http.StatusBadRequest, "request body is empty")
		}
		return httperror.WrapError(http.StatusBadRequest, err)
	}

	ctx, store, err := ectoinject.GetContext[*datastore.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get dataset store")
	}

	held := store.Put(name, format, parsed)

	return c.JSON(http.StatusCreated, UploadResponse{Dataset: held})
}

// List returns all stored datasets
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "dataset_handler.List")
	defer span.End()

	ctx, store, err := ectoinject.GetContext[*datastore.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get dataset store")
	}

	items := store.List()

	return c.JSON(http.StatusOK, ListResponse{
		Items:      items,
		TotalCount: len(items),
	})
}

// Get returns a single stored dataset by ID
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "dataset_handler.Get")
	defer span.End()

	id := c.Param("id")

	ctx, store, err := ectoinject.GetContext[*datastore.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get dataset store")
	}

	held, ok := store.Get(id)
	if !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "dataset not found")
	}

	return c.JSON(http.StatusOK, UploadResponse{Dataset: held})
}

// Delete removes a stored dataset
func Delete(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "dataset_handler.Delete")
	defer span.End()

	id := c.Param("id")

	ctx, store, err := ectoinject.GetContext[*datastore.Store](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to get dataset store")
	}

	if ok := store.Delete(id); !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "dataset not found")
	}

	return c.NoContent(http.StatusNoContent)
}
