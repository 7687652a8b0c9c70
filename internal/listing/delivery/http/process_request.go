package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"property-listing-service/internal/listing"
)

// processSearchReq builds SearchInput from query parameters. A malformed
// numeric or boolean filter drops that dimension (treated as
// unconstrained) with a warning rather than failing the whole search.
func (h *handler) processSearchReq(c *gin.Context) listing.SearchInput {
	in := listing.SearchInput{
		Term:     c.Query("term"),
		CityName: c.Query("city"),
		TypeName: c.Query("type"),
	}

	in.MinPrice = h.decimalQuery(c, "min_price")
	in.MaxPrice = h.decimalQuery(c, "max_price")
	in.MinArea = h.decimalQuery(c, "min_area")
	in.MaxArea = h.decimalQuery(c, "max_area")
	in.MinBeds = h.intQuery(c, "min_beds")
	in.MinBaths = h.intQuery(c, "min_baths")
	in.Featured = h.boolQuery(c, "featured")

	return in
}

// processCreateReq binds and converts the create listing request body.
func (h *handler) processCreateReq(c *gin.Context) (listing.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return listing.CreateInput{}, err
	}
	return req.toInput()
}

// processUpdateReq binds and converts the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (listing.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return listing.UpdateInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return listing.UpdateInput{}, listing.ErrEmptyID
	}
	return req.toInput()
}

func (h *handler) decimalQuery(c *gin.Context, name string) *decimal.Decimal {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "search: dropping malformed %s=%q: %v", name, raw, err)
		return nil
	}
	return &d
}

func (h *handler) intQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "search: dropping malformed %s=%q: %v", name, raw, err)
		return nil
	}
	return &n
}

func (h *handler) boolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "search: dropping malformed %s=%q: %v", name, raw, err)
		return nil
	}
	return &b
}
