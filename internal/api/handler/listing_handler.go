package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Create handles POST /items.
//
// @Summary      Create a new item listing
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /items [post]
func (h *ListingHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.service.CreateListing(c.Request().Context(), toCreateListingInput(req, user.ID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

// List handles GET /items — the only public read surface.
//
// @Summary      List item listings
// @Tags         items
// @Produce      json
// @Param        skip   query     int  false  "Offset into the collection"   default(0)
// @Param        limit  query     int  false  "Page size"                    default(100)
// @Success      200    {array}   listingResponse
// @Failure      400    {object}  errorResponse
// @Router       /items [get]
func (h *ListingHandler) List(c echo.Context) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid skip parameter")
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid limit parameter")
	}

	listings, err := h.service.ListListings(c.Request().Context(), ports.ListListingsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListingsResponse(listings))
}

// UploadImage handles POST /items/upload-image.
//
// @Summary      Upload a listing image and get AI suggestions
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "JPEG or PNG image, max 10 MiB"
// @Success      200   {object}  uploadImageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /items/upload-image [post]
func (h *ListingHandler) UploadImage(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	result, err := h.service.UploadImage(c.Request().Context(), ports.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUploadImageResponse(result))
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string, def int64) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
